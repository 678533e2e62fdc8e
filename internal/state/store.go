package state

import (
	"sync"
	"time"

	"github.com/cryogon/Rizumu/internal/browser"
	"github.com/cryogon/Rizumu/internal/rizumu"
)

// Snapshot represents the latest navigation state available to the UI.
type Snapshot struct {
	browser.Snapshot

	HasState    bool
	LastUpdated time.Time
	Revision    uint64
}

// Store holds the most recent snapshot published by the dispatch loop. It
// implements browser.Renderer; the terminal front end reads from it.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot

	once    sync.Once
	changed chan struct{}
}

var _ browser.Renderer = (*Store)(nil)

// Render replaces the stored snapshot and signals Changed. It never blocks.
func (s *Store) Render(snap browser.Snapshot) {
	s.mu.Lock()
	s.snapshot.Snapshot = clone(snap)
	s.snapshot.HasState = true
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.Revision++
	s.mu.Unlock()

	select {
	case s.signal() <- struct{}{}:
	default:
	}
}

// Changed returns a channel that receives after one or more Render calls.
// Signals coalesce, so readers should fetch Snapshot after each receive.
func (s *Store) Changed() <-chan struct{} {
	return s.signal()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Snapshot = clone(s.snapshot.Snapshot)
	return snap
}

func (s *Store) signal() chan struct{} {
	s.once.Do(func() { s.changed = make(chan struct{}, 1) })
	return s.changed
}

func clone(snap browser.Snapshot) browser.Snapshot {
	dup := snap
	dup.Categories = cloneSlice(snap.Categories)
	dup.Items = cloneSlice(snap.Items)
	dup.Songs = cloneSlice(snap.Songs)
	return dup
}

func cloneSlice[T string | rizumu.Item | rizumu.Song](in []T) []T {
	if len(in) == 0 {
		return nil
	}
	dup := make([]T, len(in))
	copy(dup, in)
	return dup
}
