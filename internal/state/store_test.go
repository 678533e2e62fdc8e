package state

import (
	"sync"
	"testing"
	"time"

	"github.com/cryogon/Rizumu/internal/browser"
	"github.com/cryogon/Rizumu/internal/rizumu"
)

func TestStore_ZeroValue(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.HasState {
		t.Fatal("HasState = true before any render")
	}
	if snap.Revision != 0 {
		t.Fatalf("Revision = %d, want 0", snap.Revision)
	}
	select {
	case <-s.Changed():
		t.Fatal("Changed fired before any render")
	default:
	}
}

func TestStore_RenderAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Render(browser.Snapshot{
		Focus:      browser.FocusBrowser,
		Categories: []string{"Playlists"},
		Items:      []rizumu.Item{{ID: 1, Name: "My Mix"}},
		ItemCursor: 0,
	})

	snap := s.Snapshot()
	if !snap.HasState {
		t.Fatal("HasState = false after render")
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if len(snap.Items) != 1 || snap.Items[0].Name != "My Mix" {
		t.Fatalf("snapshot items = %#v, want My Mix", snap.Items)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Items[0].Name = "changed"
	snap.Categories[0] = "changed"
	snap2 := s.Snapshot()
	if snap2.Items[0].Name != "My Mix" || snap2.Categories[0] != "Playlists" {
		t.Fatalf("Snapshot should clone slices; got %#v", snap2.Snapshot)
	}
}

func TestStore_RenderCopiesInput(t *testing.T) {
	var s Store

	items := []rizumu.Item{{ID: 1, Name: "a"}}
	s.Render(browser.Snapshot{Items: items})
	items[0].Name = "b"

	if got := s.Snapshot().Items[0].Name; got != "a" {
		t.Fatalf("stored item = %q, want a", got)
	}
}

func TestStore_ChangedCoalesces(t *testing.T) {
	var s Store

	for i := 0; i < 5; i++ {
		s.Render(browser.Snapshot{LastError: "Failed to fetch: boom"})
	}

	select {
	case <-s.Changed():
	default:
		t.Fatal("Changed did not fire after render")
	}
	select {
	case <-s.Changed():
		t.Fatal("Changed fired twice for coalesced renders")
	default:
	}

	snap := s.Snapshot()
	if snap.Revision != 5 {
		t.Fatalf("Revision = %d, want 5", snap.Revision)
	}
	if snap.LastError != "Failed to fetch: boom" {
		t.Fatalf("LastError = %q", snap.LastError)
	}
}

func TestStore_ConcurrentRenderAndRead(t *testing.T) {
	var s Store
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.Render(browser.Snapshot{ItemCursor: browser.Cursor(i)})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = s.Snapshot()
		}
	}()
	wg.Wait()

	if got := s.Snapshot().ItemCursor; got != 199 {
		t.Fatalf("ItemCursor = %d, want 199", got)
	}
}
