package browser

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryogon/Rizumu/internal/rizumu"
)

type stubGateway struct {
	mu         sync.Mutex
	items      map[string][]rizumu.Item
	songs      map[int64][]rizumu.Song
	itemsErr   error
	itemCalls  []string
	songCalls  []int64
	itemsBlock chan struct{}
}

func (g *stubGateway) FetchItems(ctx context.Context, category string) ([]rizumu.Item, error) {
	g.mu.Lock()
	g.itemCalls = append(g.itemCalls, category)
	block := g.itemsBlock
	err := g.itemsErr
	items := g.items[category]
	g.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, &rizumu.FetchError{Op: "load items for " + category, Err: err}
	}
	return items, nil
}

func (g *stubGateway) FetchSongs(_ context.Context, itemID int64) ([]rizumu.Song, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.songCalls = append(g.songCalls, itemID)
	return g.songs[itemID], nil
}

func (g *stubGateway) calls() ([]string, []int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.itemCalls...), append([]int64(nil), g.songCalls...)
}

type recordingRenderer struct {
	mu    sync.Mutex
	snaps []Snapshot
}

func (r *recordingRenderer) Render(s Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, s)
}

func (r *recordingRenderer) latest() (Snapshot, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.snaps) == 0 {
		return Snapshot{}, 0
	}
	return r.snaps[len(r.snaps)-1], len(r.snaps)
}

func (r *recordingRenderer) waitFor(t *testing.T, cond func(Snapshot) bool) Snapshot {
	t.Helper()
	require.Eventually(t, func() bool {
		s, n := r.latest()
		return n > 0 && cond(s)
	}, 2*time.Second, 5*time.Millisecond)
	s, _ := r.latest()
	return s
}

func startLoop(t *testing.T, g Gateway, r Renderer) (*Loop, <-chan error, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(NewMachine(DefaultCategories), g, r, 0)
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()
	t.Cleanup(cancel)
	return loop, done, cancel
}

func send(t *testing.T, loop *Loop, keys ...Key) {
	t.Helper()
	for _, k := range keys {
		select {
		case loop.Events() <- InputEvent(k):
		case <-time.After(time.Second):
			t.Fatalf("loop did not accept %s", k)
		}
	}
}

func TestLoopBrowseToSongs(t *testing.T) {
	gw := &stubGateway{
		items: map[string][]rizumu.Item{"Playlists": {{ID: 7, Name: "My Mix", SongCount: 1}}},
		songs: map[int64][]rizumu.Song{7: {{ID: "s1", Title: "Song A", Artist: "Artist X", Duration: "3:21"}}},
	}
	r := &recordingRenderer{}
	loop, done, _ := startLoop(t, gw, r)

	r.waitFor(t, func(s Snapshot) bool { return len(s.Items) == 1 && !s.Loading })

	send(t, loop, KeyLeft)
	r.waitFor(t, func(s Snapshot) bool { return s.Focus == FocusTab })
	send(t, loop, KeyActivate)
	snap := r.waitFor(t, func(s Snapshot) bool { return s.Focus == FocusBrowser && !s.Loading })
	item, ok := snap.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "My Mix", item.Name)

	send(t, loop, KeyActivate)
	snap = r.waitFor(t, func(s Snapshot) bool { return len(s.Songs) == 1 && !s.Loading })
	assert.Equal(t, FocusContent, snap.Focus)
	assert.Equal(t, Cursor(0), snap.SongCursor)
	assert.Equal(t, rizumu.Song{ID: "s1", Title: "Song A", Artist: "Artist X", Duration: "3:21"}, snap.Songs[0])

	send(t, loop, KeyQuit)
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop after quit")
	}

	items, songs := gw.calls()
	assert.Equal(t, []string{"Playlists", "Playlists"}, items)
	assert.Equal(t, []int64{7}, songs)
}

func TestLoopRendersAfterEveryEvent(t *testing.T) {
	gw := &stubGateway{}
	r := &recordingRenderer{}
	loop, _, _ := startLoop(t, gw, r)

	r.waitFor(t, func(s Snapshot) bool { return !s.Loading })
	_, before := r.latest()

	for i := 0; i < 3; i++ {
		loop.Events() <- TickEvent()
	}
	require.Eventually(t, func() bool {
		_, n := r.latest()
		return n == before+3
	}, time.Second, 5*time.Millisecond)
}

func TestLoopFetchErrorSurfacesInSnapshot(t *testing.T) {
	gw := &stubGateway{itemsErr: errors.New("connection refused")}
	r := &recordingRenderer{}
	startLoop(t, gw, r)

	snap := r.waitFor(t, func(s Snapshot) bool { return s.LastError != "" })
	assert.False(t, snap.Loading)
	assert.Empty(t, snap.Items)
	assert.Contains(t, snap.LastError, "Failed to load items for Playlists")
}

func TestLoopInputStaysResponsiveDuringFetch(t *testing.T) {
	gw := &stubGateway{itemsBlock: make(chan struct{})}
	r := &recordingRenderer{}
	loop, _, _ := startLoop(t, gw, r)

	r.waitFor(t, func(s Snapshot) bool { return s.Loading })
	send(t, loop, KeyLeft, KeyNext)
	snap := r.waitFor(t, func(s Snapshot) bool { return s.CategoryCursor == 1 })
	assert.True(t, snap.Loading)
	assert.Equal(t, FocusTab, snap.Focus)

	close(gw.itemsBlock)
	r.waitFor(t, func(s Snapshot) bool { return !s.Loading })
}

func TestLoopStopsOnCancel(t *testing.T) {
	gw := &stubGateway{itemsBlock: make(chan struct{})}
	r := &recordingRenderer{}
	_, done, cancel := startLoop(t, gw, r)

	r.waitFor(t, func(s Snapshot) bool { return s.Loading })
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop after cancel")
	}
}

func TestLoopRequiresCollaborators(t *testing.T) {
	loop := NewLoop(NewMachine(nil), nil, nil, 1)
	assert.Error(t, loop.Run(context.Background()))
}
