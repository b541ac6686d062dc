package claimstore

import (
	"context"
	"sync"

	"github.com/chainsafe/claim-registry/pkg/claim"
)

// MemoryStore keeps claims in process memory. Nothing survives a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	claims map[string]claim.Claim
}

// NewMemoryStore creates an empty in-memory claim store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{claims: make(map[string]claim.Claim)}
}

func (s *MemoryStore) GetClaim(_ context.Context, fp claim.Fingerprint) (*claim.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.claims[fp.Key()]
	if !ok {
		return nil, claim.ErrNotFound
	}
	return &c, nil
}

func (s *MemoryStore) InsertClaim(_ context.Context, fp claim.Fingerprint, c claim.Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.claims[fp.Key()]; ok {
		return claim.ErrAlreadyClaimed
	}
	s.claims[fp.Key()] = c
	return nil
}

func (s *MemoryStore) UpdateClaim(_ context.Context, fp claim.Fingerprint, c claim.Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.claims[fp.Key()]; !ok {
		return claim.ErrNotFound
	}
	s.claims[fp.Key()] = c
	return nil
}

func (s *MemoryStore) DeleteClaim(_ context.Context, fp claim.Fingerprint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.claims[fp.Key()]; !ok {
		return claim.ErrNotFound
	}
	delete(s.claims, fp.Key())
	return nil
}

// CountClaims returns the number of fingerprints currently claimed.
func (s *MemoryStore) CountClaims(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.claims), nil
}

// MaxHeight returns the highest registration height held.
func (s *MemoryStore) MaxHeight(_ context.Context) (claim.Height, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var highest claim.Height
	for _, c := range s.claims {
		if c.RegisteredAt > highest {
			highest = c.RegisteredAt
		}
	}
	return highest, nil
}
