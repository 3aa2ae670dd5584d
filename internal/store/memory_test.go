package store_test

import (
	"sync"
	"testing"
	"time"

	"github.com/halldorv/vedurvakt/internal/domain"
	"github.com/halldorv/vedurvakt/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_EmptyUntilFirstSave(t *testing.T) {
	s := store.NewMemoryStore()

	_, err := s.Latest()
	require.ErrorIs(t, err, store.ErrNoSnapshot)
	assert.False(t, s.Ready())
}

func TestMemoryStore_SaveAndLatest(t *testing.T) {
	s := store.NewMemoryStore()

	first := &domain.Snapshot{StationID: "1", FetchedAt: time.Now().UTC()}
	s.Save(first)

	got, err := s.Latest()
	require.NoError(t, err)
	assert.Same(t, first, got)
	assert.True(t, s.Ready())

	second := &domain.Snapshot{StationID: "1", FetchedAt: time.Now().UTC()}
	s.Save(second)

	got, err = s.Latest()
	require.NoError(t, err)
	assert.Same(t, second, got)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	s := store.NewMemoryStore()
	s.Save(&domain.Snapshot{StationID: "1"})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Save(&domain.Snapshot{StationID: "1"})
		}()
		go func() {
			defer wg.Done()
			_, err := s.Latest()
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
