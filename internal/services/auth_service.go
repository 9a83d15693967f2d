package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrBadCreds = errors.New("invalid email or password")

// AuthService checks the single admin credential and tracks logged-in
// sessions in memory. There are no user accounts; the public site needs no
// login at all.
type AuthService struct {
	adminEmail string
	adminHash  []byte

	// CheckDelay slows every credential check uniformly so response timing
	// does not reveal whether the email matched. Tests set it to zero.
	CheckDelay time.Duration

	mu       sync.Mutex
	sessions map[string]time.Time
}

func NewAuthService(adminEmail, adminPassword string) *AuthService {
	hash, _ := bcrypt.GenerateFromPassword([]byte(adminPassword), 12)
	return &AuthService{
		adminEmail: strings.ToLower(strings.TrimSpace(adminEmail)),
		adminHash:  hash,
		CheckDelay: 600 * time.Millisecond,
		sessions:   map[string]time.Time{},
	}
}

// Login verifies the credential pair and returns a new session id on success.
func (s *AuthService) Login(email, password string) (string, error) {
	time.Sleep(s.CheckDelay)
	if !strings.EqualFold(strings.TrimSpace(email), s.adminEmail) {
		// Still burn a bcrypt comparison so both failure paths cost the same.
		_ = bcrypt.CompareHashAndPassword(s.adminHash, []byte("-"))
		return "", ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)) != nil {
		return "", ErrBadCreds
	}
	sid := uuid.NewString()
	s.mu.Lock()
	s.sessions[sid] = time.Now()
	s.mu.Unlock()
	return sid, nil
}

func (s *AuthService) Logout(sid string) {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
}

// IsAdmin reports whether sid belongs to a live admin session.
func (s *AuthService) IsAdmin(sid string) bool {
	if sid == "" {
		return false
	}
	s.mu.Lock()
	_, ok := s.sessions[sid]
	s.mu.Unlock()
	return ok
}
