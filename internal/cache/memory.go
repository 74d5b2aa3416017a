package cache

import (
	"context"
	"sync"

	"github.com/thebettinginsider/splitsight/internal/splits"
)

type memoryStore struct {
	mu   sync.RWMutex
	snap *splits.Snapshot
}

// NewMemoryStore returns the default in-process store. A process
// restart discards the snapshot.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Get(ctx context.Context) (*splits.Snapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return nil, false, nil
	}
	snap := *s.snap
	return &snap, true, nil
}

func (s *memoryStore) Set(ctx context.Context, snap splits.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = &snap
	return nil
}

func (s *memoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = nil
	return nil
}

func (s *memoryStore) Close() error {
	return nil
}
