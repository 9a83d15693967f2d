package services

import (
	"fouraana/internal/domain"
	"fouraana/internal/query"
	"fouraana/internal/store"
)

// ListingService exposes the read side of the catalog: featured rows for the
// home page, filtered rows for the listings page, single lookups for the
// detail page.
type ListingService struct {
	Store *store.Store
}

func NewListingService(s *store.Store) *ListingService { return &ListingService{Store: s} }

func (s *ListingService) Settings() (domain.SiteSettings, error) {
	state, err := s.Store.Load()
	if err != nil {
		return domain.SiteSettings{}, err
	}
	return state.Settings, nil
}

// Featured returns the available listings flagged for the home page.
func (s *ListingService) Featured() ([]domain.Property, error) {
	state, err := s.Store.Load()
	if err != nil {
		return nil, err
	}
	out := []domain.Property{}
	for _, p := range state.Properties {
		if p.IsFeatured && p.IsAvailable {
			out = append(out, p)
		}
	}
	return out, nil
}

// Search applies f over the full collection, preserving stored order.
func (s *ListingService) Search(f query.Filter) ([]domain.Property, error) {
	state, err := s.Store.Load()
	if err != nil {
		return nil, err
	}
	return query.Apply(state.Properties, f), nil
}

// Get returns the listing with the given id; ok is false when absent.
func (s *ListingService) Get(id string) (domain.Property, bool, error) {
	state, err := s.Store.Load()
	if err != nil {
		return domain.Property{}, false, err
	}
	for _, p := range state.Properties {
		if p.ID == id {
			return p, true, nil
		}
	}
	return domain.Property{}, false, nil
}

// Favorites returns the saved listings in stored order plus the raw id set
// for membership checks in templates.
func (s *ListingService) Favorites() ([]domain.Property, map[string]bool, error) {
	state, err := s.Store.Load()
	if err != nil {
		return nil, nil, err
	}
	set := map[string]bool{}
	for _, id := range state.Favorites {
		set[id] = true
	}
	out := []domain.Property{}
	for _, p := range state.Properties {
		if set[p.ID] {
			out = append(out, p)
		}
	}
	return out, set, nil
}

func (s *ListingService) ToggleFavorite(id string) ([]string, error) {
	return s.Store.ToggleFavorite(id)
}
