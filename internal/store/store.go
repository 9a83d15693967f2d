// Package store owns the persisted application document. Every read and
// write of durable state goes through a Store; callers never touch the
// storage backend directly.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"fouraana/internal/domain"
	"fouraana/internal/storage"
)

// StateKey is the fixed key the whole aggregate lives under.
const StateKey = "4aana_state"

// ErrCorrupt wraps a deserialization failure of the stored document. There is
// no recovery path; callers surface it as a "data could not be loaded" state.
var ErrCorrupt = errors.New("stored state is corrupt")

// Store reads, mutates and rewrites the aggregate as one document. Each
// mutator is load → modify → save under a process-local mutex; concurrent
// writers in other processes still race with last-writer-wins, losing the
// earlier writer's unrelated changes.
type Store struct {
	mu sync.Mutex
	kv storage.Backend
}

func New(kv storage.Backend) *Store {
	return &Store{kv: kv}
}

// Load returns the current aggregate. On first access (no document under
// StateKey) it seeds the default state and persists it before returning, so a
// document always exists afterwards.
func (s *Store) Load() (domain.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() (domain.AppState, error) {
	raw, err := s.kv.Get(StateKey)
	if errors.Is(err, storage.ErrNotFound) {
		state := seedState()
		if err := s.save(state); err != nil {
			return domain.AppState{}, err
		}
		return state, nil
	}
	if err != nil {
		return domain.AppState{}, err
	}

	var state domain.AppState
	if err := json.Unmarshal(raw, &state); err != nil {
		return domain.AppState{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	normalize(&state)
	return state, nil
}

// Save overwrites the stored document with state. No partial writes; the last
// writer wins in full.
func (s *Store) Save(state domain.AppState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(state)
}

func (s *Store) save(state domain.AppState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.kv.Set(StateKey, raw)
}

// AddProperty appends p. The caller guarantees id uniqueness; no check is
// made here.
func (s *Store) AddProperty(p domain.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return err
	}
	p.Normalize()
	state.Properties = append(state.Properties, p)
	return s.save(state)
}

// UpdateProperty replaces every record whose id matches p.ID. An unmatched id
// is a silent no-op.
func (s *Store) UpdateProperty(p domain.Property) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return err
	}
	p.Normalize()
	for i := range state.Properties {
		if state.Properties[i].ID == p.ID {
			state.Properties[i] = p
		}
	}
	return s.save(state)
}

// DeleteProperty removes every record with the given id. An unmatched id is a
// silent no-op.
func (s *Store) DeleteProperty(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return err
	}
	kept := state.Properties[:0]
	for _, p := range state.Properties {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	state.Properties = kept
	return s.save(state)
}

// AddInquiry appends i. The propertyId reference is not checked; a dangling
// reference is tolerated and rendered as an unknown property downstream.
func (s *Store) AddInquiry(i domain.Inquiry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return err
	}
	state.Inquiries = append(state.Inquiries, i)
	return s.save(state)
}

// UpdateSettings replaces the settings record wholesale.
func (s *Store) UpdateSettings(settings domain.SiteSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return err
	}
	state.Settings = settings
	return s.save(state)
}

// ToggleFavorite flips membership of id in the favorites set and returns the
// new list.
func (s *Store) ToggleFavorite(id string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, err := s.load()
	if err != nil {
		return nil, err
	}
	found := false
	kept := state.Favorites[:0]
	for _, fid := range state.Favorites {
		if fid == id {
			found = true
			continue
		}
		kept = append(kept, fid)
	}
	state.Favorites = kept
	if !found {
		state.Favorites = append(state.Favorites, id)
	}
	if err := s.save(state); err != nil {
		return nil, err
	}
	return state.Favorites, nil
}

// normalize default-fills what an older or hand-edited document may be
// missing. The document format carries no version field, so a field added
// after a document was written simply comes back zero-valued.
func normalize(state *domain.AppState) {
	if state.Properties == nil {
		state.Properties = []domain.Property{}
	}
	if state.Inquiries == nil {
		state.Inquiries = []domain.Inquiry{}
	}
	if state.Favorites == nil {
		state.Favorites = []string{}
	}
	for i := range state.Properties {
		state.Properties[i].Normalize()
	}
	def := defaultSettings()
	st := &state.Settings
	if st.HomepageTitle == "" {
		st.HomepageTitle = def.HomepageTitle
	}
	if st.HomepageSubtitle == "" {
		st.HomepageSubtitle = def.HomepageSubtitle
	}
	if st.AboutText == "" {
		st.AboutText = def.AboutText
	}
	if st.ContactEmail == "" {
		st.ContactEmail = def.ContactEmail
	}
	if st.ContactPhone == "" {
		st.ContactPhone = def.ContactPhone
	}
	if st.MetaDescription == "" {
		st.MetaDescription = def.MetaDescription
	}
}
