package browser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cryogon/Rizumu/internal/rizumu"
)

var testItems = []rizumu.Item{
	{ID: 1, Name: "My Mix"},
	{ID: 2, Name: "Focus"},
	{ID: 3, Name: "Road Trip"},
}

var testSongs = []rizumu.Song{
	{ID: "s1", Title: "Song A", Artist: "Artist X", Duration: "3:21"},
	{ID: "s2", Title: "Song B", Artist: "Artist Y", Duration: "4:02"},
}

// loaded returns a machine with testItems already in the browser pane.
func loaded(t *testing.T) *Machine {
	t.Helper()
	m := NewMachine(DefaultCategories)
	eff := m.Start()
	require.NotNil(t, eff.Fetch)
	m.Apply(Event{Kind: EventItemsLoaded, Seq: eff.Fetch.Seq, Items: testItems})
	return m
}

func TestNewMachineInitialState(t *testing.T) {
	m := NewMachine(DefaultCategories)
	snap := m.Snapshot()

	assert.Equal(t, FocusBrowser, snap.Focus)
	assert.Equal(t, Cursor(0), snap.CategoryCursor)
	assert.Equal(t, NoSelection, snap.ItemCursor)
	assert.Equal(t, NoSelection, snap.SongCursor)
	assert.Empty(t, snap.Items)
	assert.Empty(t, snap.Songs)
	assert.False(t, snap.Loading)
}

func TestStartFetchesFirstCategory(t *testing.T) {
	m := NewMachine(DefaultCategories)
	eff := m.Start()

	require.NotNil(t, eff.Fetch)
	assert.Equal(t, FetchItems, eff.Fetch.Kind)
	assert.Equal(t, "Playlists", eff.Fetch.Category)
	assert.True(t, m.Snapshot().Loading)
}

func TestStartWithoutCategories(t *testing.T) {
	m := NewMachine(nil)
	eff := m.Start()
	assert.Nil(t, eff.Fetch)
	assert.Equal(t, NoSelection, m.Snapshot().CategoryCursor)
}

func TestFocusAdjacency(t *testing.T) {
	tests := []struct {
		from Focus
		key  Key
		want Focus
	}{
		{FocusTab, KeyRight, FocusBrowser},
		{FocusBrowser, KeyRight, FocusContent},
		{FocusContent, KeyRight, FocusContent},
		{FocusContent, KeyLeft, FocusBrowser},
		{FocusBrowser, KeyLeft, FocusTab},
		{FocusTab, KeyLeft, FocusTab},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.key.String(), func(t *testing.T) {
			m := NewMachine(DefaultCategories)
			m.focus = tt.from
			eff := m.Apply(InputEvent(tt.key))
			assert.Equal(t, tt.want, m.Focus())
			assert.Nil(t, eff.Fetch)
		})
	}
}

func TestNavigationMovesFocusedCursorOnly(t *testing.T) {
	m := loaded(t)

	m.Apply(InputEvent(KeyNext))
	snap := m.Snapshot()
	assert.Equal(t, Cursor(1), snap.ItemCursor)
	assert.Equal(t, Cursor(0), snap.CategoryCursor)

	m.Apply(InputEvent(KeyLeft))
	m.Apply(InputEvent(KeyPrev))
	snap = m.Snapshot()
	assert.Equal(t, Cursor(3), snap.CategoryCursor)
	assert.Equal(t, Cursor(1), snap.ItemCursor)
}

func TestNavigationOnEmptyPaneIsNoop(t *testing.T) {
	m := NewMachine(DefaultCategories)
	m.Apply(InputEvent(KeyRight))
	m.Apply(InputEvent(KeyNext))
	assert.Equal(t, NoSelection, m.Snapshot().SongCursor)
}

func TestActivateCategoryIssuesOneFetchAndResetsItems(t *testing.T) {
	m := loaded(t)
	m.Apply(InputEvent(KeyNext))
	m.Apply(InputEvent(KeyLeft))
	m.Apply(InputEvent(KeyNext))

	eff := m.Apply(InputEvent(KeyActivate))
	require.NotNil(t, eff.Fetch)
	assert.Equal(t, "Artists", eff.Fetch.Category)
	assert.Equal(t, FocusBrowser, m.Focus())

	m.Apply(Event{Kind: EventItemsLoaded, Seq: eff.Fetch.Seq, Items: testItems[:2]})
	snap := m.Snapshot()
	assert.Len(t, snap.Items, 2)
	assert.Equal(t, Cursor(0), snap.ItemCursor)
	assert.False(t, snap.Loading)
}

func TestActivateItemFetchesSongs(t *testing.T) {
	m := loaded(t)

	eff := m.Apply(InputEvent(KeyActivate))
	require.NotNil(t, eff.Fetch)
	assert.Equal(t, FetchSongs, eff.Fetch.Kind)
	assert.Equal(t, int64(1), eff.Fetch.ItemID)
	assert.Equal(t, FocusContent, m.Focus())

	m.Apply(Event{Kind: EventSongsLoaded, Seq: eff.Fetch.Seq, Songs: testSongs})
	song, ok := m.Snapshot().SelectedSong()
	require.True(t, ok)
	assert.Equal(t, "Song A", song.Title)
}

func TestActivateWithoutSelectionIsNoop(t *testing.T) {
	m := NewMachine(DefaultCategories)
	eff := m.Apply(InputEvent(KeyActivate))
	assert.Nil(t, eff.Fetch)
	assert.Equal(t, FocusBrowser, m.Focus())
}

func TestActivateInContentIsNoop(t *testing.T) {
	m := loaded(t)
	m.focus = FocusContent
	before := m.Snapshot()

	eff := m.Apply(InputEvent(KeyActivate))
	assert.Nil(t, eff.Fetch)
	assert.Equal(t, before, m.Snapshot())
}

func TestFetchErrorKeepsDataAndClearsLoading(t *testing.T) {
	m := loaded(t)
	m.Apply(InputEvent(KeyNext))
	m.Apply(InputEvent(KeyLeft))
	eff := m.Apply(InputEvent(KeyActivate))
	require.NotNil(t, eff.Fetch)

	err := &rizumu.FetchError{Op: "load items for Playlists", Err: errors.New("connection refused")}
	m.Apply(Event{Kind: EventItemsLoaded, Seq: eff.Fetch.Seq, Err: err})

	snap := m.Snapshot()
	assert.Equal(t, testItems, snap.Items)
	assert.Equal(t, Cursor(1), snap.ItemCursor)
	assert.False(t, snap.Loading)
	assert.Equal(t, "Failed to load items for Playlists: connection refused", snap.LastError)
}

func TestSuccessClearsLastError(t *testing.T) {
	m := loaded(t)
	m.lastError = "Failed to fetch: boom"

	eff := m.Apply(InputEvent(KeyActivate))
	m.Apply(Event{Kind: EventSongsLoaded, Seq: eff.Fetch.Seq, Songs: testSongs})
	assert.Empty(t, m.Snapshot().LastError)
}

func TestStaleResultIsDiscarded(t *testing.T) {
	m := loaded(t)
	m.Apply(InputEvent(KeyLeft))
	first := m.Apply(InputEvent(KeyActivate))
	m.Apply(InputEvent(KeyLeft))
	m.Apply(InputEvent(KeyNext))
	second := m.Apply(InputEvent(KeyActivate))
	require.NotNil(t, first.Fetch)
	require.NotNil(t, second.Fetch)
	require.NotEqual(t, first.Fetch.Seq, second.Fetch.Seq)

	eff := m.Apply(Event{Kind: EventItemsLoaded, Seq: first.Fetch.Seq, Items: testItems[:1]})
	assert.True(t, eff.Discarded)
	snap := m.Snapshot()
	assert.Equal(t, testItems, snap.Items)
	assert.True(t, snap.Loading)

	eff = m.Apply(Event{Kind: EventItemsLoaded, Seq: second.Fetch.Seq, Items: testItems[1:]})
	assert.False(t, eff.Discarded)
	snap = m.Snapshot()
	assert.Len(t, snap.Items, 2)
	assert.False(t, snap.Loading)
}

func TestQuitKey(t *testing.T) {
	m := NewMachine(DefaultCategories)
	assert.True(t, m.Apply(InputEvent(KeyQuit)).Quit)
}

func TestTickChangesNothing(t *testing.T) {
	m := loaded(t)
	before := m.Snapshot()
	eff := m.Apply(TickEvent())
	assert.Equal(t, Effect{}, eff)
	assert.Equal(t, before, m.Snapshot())
}

func TestSnapshotIsACopy(t *testing.T) {
	m := loaded(t)
	snap := m.Snapshot()
	snap.Items[0].Name = "mutated"
	snap.Categories[0] = "mutated"

	again := m.Snapshot()
	assert.Equal(t, "My Mix", again.Items[0].Name)
	assert.Equal(t, "Playlists", again.Categories[0])
}

func TestFailureMessageForPlainError(t *testing.T) {
	assert.Equal(t, "Failed to fetch: boom", failureMessage(errors.New("boom")))
}
