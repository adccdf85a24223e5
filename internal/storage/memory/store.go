package memory

import (
	"context"
	"sync"

	"greenKudi/internal/domain"
)

// Store keeps hotspots for the lifetime of the process.
type Store struct {
	mu       sync.RWMutex
	hotspots []domain.Hotspot
}

func NewStore() *Store {
	return &Store{hotspots: make([]domain.Hotspot, 0, 16)}
}

// Enumerate returns a copy in insertion order. Notes are copied too, so callers
// can never reach stored state.
func (s *Store) Enumerate(_ context.Context) ([]domain.Hotspot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Hotspot, len(s.hotspots))
	for i, h := range s.hotspots {
		out[i] = cloneHotspot(h)
	}
	return out, nil
}

func (s *Store) Append(_ context.Context, hotspot domain.Hotspot) error {
	hotspot = cloneHotspot(hotspot)

	s.mu.Lock()
	s.hotspots = append(s.hotspots, hotspot)
	s.mu.Unlock()
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.hotspots)
}

func cloneHotspot(h domain.Hotspot) domain.Hotspot {
	if h.Note != nil {
		note := *h.Note
		h.Note = &note
	}
	return h
}
