package validate

import (
	"regexp"
	"strconv"
	"strings"

	"fouraana/internal/domain"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reQ     = regexp.MustCompile(`^[A-Za-z0-9 _',.\-]{1,50}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	rePhone = regexp.MustCompile(`^\+?[0-9][0-9 -]{5,18}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 80 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Q validates a keyword search: trims, enforces allowed characters and max length.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

// ID validates a listing or inquiry identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && rePhone.MatchString(s)
}

// Name validates a displayable person or listing name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 80 {
		return "", false
	}
	return s, true
}

// Message validates free-form inquiry text.
func Message(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 2000 {
		return "", false
	}
	return s, true
}

// Price parses a non-negative NPR amount.
func Price(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// OptPrice parses an optional price bound: empty means no bound.
func OptPrice(s string) (*int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, true
	}
	n, ok := Price(s)
	if !ok {
		return nil, false
	}
	return &n, true
}

// Area parses a non-negative decimal area (Aana or sq.ft). Empty is zero.
func Area(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// PropertyType accepts a declared category or the "All" wildcard.
func PropertyType(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "All" {
		return s, true
	}
	return s, domain.ValidPropertyType(s)
}

// PropertyStatus accepts a declared status or the "All" wildcard.
func PropertyStatus(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "All" {
		return s, true
	}
	return s, domain.ValidPropertyStatus(s)
}

// Password enforces a simple length window for login checks.
func Password(s string) bool {
	return len(s) >= 8 && len(s) <= 64
}
