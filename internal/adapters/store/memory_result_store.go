package store

import (
	"context"
	"parcel-costing-service/internal/domain"
	"sync"
)

// MemoryResultStore keeps the last calculation in process memory.
// It is safe for concurrent use; the last write wins.
type MemoryResultStore struct {
	mu   sync.RWMutex
	last *domain.CalculationResult
}

func NewMemoryResultStore() *MemoryResultStore {
	return &MemoryResultStore{}
}

func (s *MemoryResultStore) Save(ctx context.Context, result domain.CalculationResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = &result
	return nil
}

func (s *MemoryResultStore) Last(ctx context.Context) (domain.CalculationResult, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return domain.CalculationResult{}, false, nil
	}
	return *s.last, true, nil
}
