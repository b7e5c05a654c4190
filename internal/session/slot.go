// Package session holds the "current results" slot of each user session.
// A slot is only ever replaced as a whole, never edited in place.
package session

import (
	"context"
	"sync"

	"dealfinder/internal/model"
)

type Slot interface {
	Replace(ctx context.Context, sessionID string, products []model.Product) error
	Current(ctx context.Context, sessionID string) ([]model.Product, error)
}

// MemorySlot mantém os resultados em memória, um processo só.
type MemorySlot struct {
	mu      sync.RWMutex
	results map[string][]model.Product
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{results: make(map[string][]model.Product)}
}

func (s *MemorySlot) Replace(_ context.Context, sessionID string, products []model.Product) error {
	list := make([]model.Product, len(products))
	copy(list, products)

	s.mu.Lock()
	s.results[sessionID] = list
	s.mu.Unlock()
	return nil
}

// Current returns a copy of the session's list; nil when nothing was searched yet.
func (s *MemorySlot) Current(_ context.Context, sessionID string) ([]model.Product, error) {
	s.mu.RLock()
	list, ok := s.results[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	out := make([]model.Product, len(list))
	copy(out, list)
	return out, nil
}
