package tokenstore

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/what-to-wear/internal/domain/auth"
)

// MemoryStore keeps revoked token ids in process memory for tests/dev.
type MemoryStore struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{revoked: make(map[string]time.Time)}
}

// Revoke marks the token id revoked until ttl elapses.
func (s *MemoryStore) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[tokenID] = time.Now().Add(ttl)
	return nil
}

// IsRevoked reports whether the token id is currently revoked.
func (s *MemoryStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	s.mu.RLock()
	expiry, ok := s.revoked[tokenID]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if expiry.Before(time.Now()) {
		s.mu.Lock()
		delete(s.revoked, tokenID)
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}

var _ auth.TokenStore = (*MemoryStore)(nil)
