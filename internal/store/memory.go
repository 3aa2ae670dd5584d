// Package store keeps the most recent weather snapshot in memory.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/halldorv/vedurvakt/internal/domain"
)

// ErrNoSnapshot is returned before the first successful refresh.
var ErrNoSnapshot = errors.New("no snapshot available yet")

// MemoryStore is a concurrency-safe holder for the latest snapshot.
// The service tracks a single station, so only one snapshot is kept.
type MemoryStore struct {
	mu     sync.RWMutex
	latest *domain.Snapshot
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save replaces the stored snapshot.
func (s *MemoryStore) Save(snap *domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = snap
}

// Latest returns the most recently saved snapshot.
func (s *MemoryStore) Latest() (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return nil, ErrNoSnapshot
	}
	return s.latest, nil
}

// Ready reports whether at least one snapshot has been saved.
func (s *MemoryStore) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest != nil
}

// CheckReadiness satisfies the HTTP server's readiness probe. The
// service is ready once the first refresh has succeeded.
func (s *MemoryStore) CheckReadiness(_ context.Context) error {
	if !s.Ready() {
		return ErrNoSnapshot
	}
	return nil
}
