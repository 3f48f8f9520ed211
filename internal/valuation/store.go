package valuation

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrValuationNotFound is returned for unknown or already-expired valuations.
var ErrValuationNotFound = errors.New("valuation not found")

// Store keeps issued valuations until they expire so a customer can accept
// one into a trade-in later.
type Store interface {
	Save(ctx context.Context, v ValuationResponse) error
	Get(ctx context.Context, valuationID string) (*ValuationResponse, error)
}

// MemoryStore is the in-process Store used in tests and local runs.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]ValuationResponse
	now  func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]ValuationResponse),
		now:  time.Now,
	}
}

func (s *MemoryStore) Save(_ context.Context, v ValuationResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[v.ValuationID] = v
	return nil
}

func (s *MemoryStore) Get(_ context.Context, valuationID string) (*ValuationResponse, error) {
	s.mu.RLock()
	v, ok := s.data[valuationID]
	s.mu.RUnlock()
	if !ok || s.now().After(v.ExpiresAt) {
		return nil, ErrValuationNotFound
	}
	return &v, nil
}
