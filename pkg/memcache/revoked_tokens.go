package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore remembers logged-out JWT ids until their own expiry.
type RevokedTokenStore interface {
	Revoke(tokenID string, expiresAt time.Time)

	// IsRevoked reports whether tokenID was revoked and has not yet expired.
	IsRevoked(tokenID string) bool

	// Sweep drops expired entries and returns how many were removed.
	Sweep() int
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *RevokedTokens) Revoke(tokenID string, expiresAt time.Time) {
	if tokenID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[tokenID] = expiresAt
}

func (s *RevokedTokens) IsRevoked(tokenID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp, ok := s.data[tokenID]
	if !ok {
		return false
	}
	return s.now().Before(exp)
}

func (s *RevokedTokens) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, exp := range s.data {
		if !now.Before(exp) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}
