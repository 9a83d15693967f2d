// Package query computes the visible subset of listings for the listings
// page. It is pure: no storage access, recomputed from scratch on every
// filter change. Collections are small (tens to low hundreds of records), so
// a linear scan is all there is.
package query

import (
	"strings"

	"fouraana/internal/domain"
)

// All is the wildcard value for the Type and Status fields.
const All = "All"

// Filter is the user's narrowing criteria. Zero values mean "no constraint":
// empty strings (or All for the enums) and nil price bounds.
type Filter struct {
	Query    string
	Type     string
	Status   string
	MinPrice *int64
	MaxPrice *int64
	District string
}

// IsZero reports whether no constraint is set.
func (f Filter) IsZero() bool {
	return f.Query == "" &&
		(f.Type == "" || f.Type == All) &&
		(f.Status == "" || f.Status == All) &&
		f.MinPrice == nil && f.MaxPrice == nil &&
		f.District == ""
}

// Apply returns the listings that pass every predicate of f, preserving the
// input order. The result is never nil; an empty slice is a first-class
// outcome, distinct from "still loading".
func Apply(props []domain.Property, f Filter) []domain.Property {
	out := []domain.Property{}
	for _, p := range props {
		if Matches(p, f) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether p passes every predicate of f.
func Matches(p domain.Property, f Filter) bool {
	if !f.matchQuery(p) {
		return false
	}
	if f.Type != "" && f.Type != All && string(p.Type) != f.Type {
		return false
	}
	if f.Status != "" && f.Status != All && string(p.Status) != f.Status {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.District != "" && !strings.EqualFold(p.Location.District, f.District) {
		return false
	}
	return true
}

// matchQuery is a case-insensitive substring match across title, city,
// district and description.
func (f Filter) matchQuery(p domain.Property) bool {
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(f.Query)
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Location.City), q) ||
		strings.Contains(strings.ToLower(p.Location.District), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}
