package browser

import (
	"errors"
	"fmt"

	"github.com/cryogon/Rizumu/internal/rizumu"
)

// Focus is the pane that receives navigation keys.
type Focus int

const (
	FocusTab Focus = iota
	FocusBrowser
	FocusContent
)

func (f Focus) String() string {
	switch f {
	case FocusTab:
		return "tab"
	case FocusContent:
		return "content"
	default:
		return "browser"
	}
}

// DefaultCategories is the library category list used when none is configured.
var DefaultCategories = []string{"Playlists", "Artists", "Albums", "Provider"}

// Machine is the navigation state machine. It is not safe for concurrent use;
// the Loop is its only caller.
type Machine struct {
	focus Focus

	categories []string
	items      []rizumu.Item
	songs      []rizumu.Song

	categoryCursor Cursor
	itemCursor     Cursor
	songCursor     Cursor

	// Latest request issued per pane; older completions are dropped.
	itemsSeq     uint64
	songsSeq     uint64
	itemsPending bool
	songsPending bool

	lastError string
}

// NewMachine returns the initial state: browser pane focused, first category
// selected, nothing loaded.
func NewMachine(categories []string) *Machine {
	cats := append([]string(nil), categories...)
	return &Machine{
		focus:          FocusBrowser,
		categories:     cats,
		categoryCursor: resetFor(len(cats)),
		itemCursor:     NoSelection,
		songCursor:     NoSelection,
	}
}

// Start performs the implicit activation of the selected category that
// populates the browser pane at startup.
func (m *Machine) Start() Effect {
	return m.activateCategory()
}

// Apply folds one event into the state and returns the side effect to run.
func (m *Machine) Apply(ev Event) Effect {
	switch ev.Kind {
	case EventInput:
		return m.applyKey(ev.Key)
	case EventItemsLoaded:
		return m.applyItems(ev)
	case EventSongsLoaded:
		return m.applySongs(ev)
	default:
		return Effect{}
	}
}

// Focus returns the focused pane.
func (m *Machine) Focus() Focus {
	return m.focus
}

// Loading reports whether the latest request of any pane is outstanding.
func (m *Machine) Loading() bool {
	return m.itemsPending || m.songsPending
}

func (m *Machine) applyKey(k Key) Effect {
	switch k {
	case KeyQuit:
		return Effect{Quit: true}
	case KeyNext:
		m.move(1)
	case KeyPrev:
		m.move(-1)
	case KeyRight:
		switch m.focus {
		case FocusTab:
			m.focus = FocusBrowser
		case FocusBrowser:
			m.focus = FocusContent
		}
	case KeyLeft:
		switch m.focus {
		case FocusBrowser:
			m.focus = FocusTab
		case FocusContent:
			m.focus = FocusBrowser
		}
	case KeyActivate:
		switch m.focus {
		case FocusTab:
			return m.activateCategory()
		case FocusBrowser:
			return m.activateItem()
		}
	}
	return Effect{}
}

func (m *Machine) move(delta int) {
	switch m.focus {
	case FocusTab:
		m.categoryCursor = m.categoryCursor.Wrap(delta, len(m.categories))
	case FocusBrowser:
		m.itemCursor = m.itemCursor.Wrap(delta, len(m.items))
	case FocusContent:
		m.songCursor = m.songCursor.Wrap(delta, len(m.songs))
	}
}

func (m *Machine) activateCategory() Effect {
	if !m.categoryCursor.Valid(len(m.categories)) {
		return Effect{}
	}
	i, _ := m.categoryCursor.Index()
	m.itemsSeq++
	m.itemsPending = true
	m.focus = FocusBrowser
	return Effect{Fetch: &FetchRequest{
		Kind:     FetchItems,
		Seq:      m.itemsSeq,
		Category: m.categories[i],
	}}
}

func (m *Machine) activateItem() Effect {
	if !m.itemCursor.Valid(len(m.items)) {
		return Effect{}
	}
	i, _ := m.itemCursor.Index()
	m.songsSeq++
	m.songsPending = true
	m.focus = FocusContent
	return Effect{Fetch: &FetchRequest{
		Kind:   FetchSongs,
		Seq:    m.songsSeq,
		ItemID: m.items[i].ID,
	}}
}

func (m *Machine) applyItems(ev Event) Effect {
	if !m.itemsPending || ev.Seq != m.itemsSeq {
		return Effect{Discarded: true}
	}
	m.itemsPending = false
	if ev.Err != nil {
		m.lastError = failureMessage(ev.Err)
		return Effect{}
	}
	m.items = append([]rizumu.Item(nil), ev.Items...)
	m.itemCursor = resetFor(len(m.items))
	m.lastError = ""
	return Effect{}
}

func (m *Machine) applySongs(ev Event) Effect {
	if !m.songsPending || ev.Seq != m.songsSeq {
		return Effect{Discarded: true}
	}
	m.songsPending = false
	if ev.Err != nil {
		m.lastError = failureMessage(ev.Err)
		return Effect{}
	}
	m.songs = append([]rizumu.Song(nil), ev.Songs...)
	m.songCursor = resetFor(len(m.songs))
	m.lastError = ""
	return Effect{}
}

func failureMessage(err error) string {
	var fetchErr *rizumu.FetchError
	if errors.As(err, &fetchErr) {
		return fmt.Sprintf("Failed to %s: %v", fetchErr.Op, fetchErr.Err)
	}
	return fmt.Sprintf("Failed to fetch: %v", err)
}

// Snapshot is a read-only copy of the navigation state for rendering.
type Snapshot struct {
	Focus Focus

	Categories []string
	Items      []rizumu.Item
	Songs      []rizumu.Song

	CategoryCursor Cursor
	ItemCursor     Cursor
	SongCursor     Cursor

	Loading   bool
	LastError string
}

// Snapshot copies the current state.
func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Focus:          m.focus,
		Categories:     append([]string(nil), m.categories...),
		Items:          append([]rizumu.Item(nil), m.items...),
		Songs:          append([]rizumu.Song(nil), m.songs...),
		CategoryCursor: m.categoryCursor,
		ItemCursor:     m.itemCursor,
		SongCursor:     m.songCursor,
		Loading:        m.Loading(),
		LastError:      m.lastError,
	}
}

// SelectedCategory returns the highlighted category.
func (s Snapshot) SelectedCategory() (string, bool) {
	if !s.CategoryCursor.Valid(len(s.Categories)) {
		return "", false
	}
	i, _ := s.CategoryCursor.Index()
	return s.Categories[i], true
}

// SelectedItem returns the highlighted browser item.
func (s Snapshot) SelectedItem() (rizumu.Item, bool) {
	if !s.ItemCursor.Valid(len(s.Items)) {
		return rizumu.Item{}, false
	}
	i, _ := s.ItemCursor.Index()
	return s.Items[i], true
}

// SelectedSong returns the highlighted song.
func (s Snapshot) SelectedSong() (rizumu.Song, bool) {
	if !s.SongCursor.Valid(len(s.Songs)) {
		return rizumu.Song{}, false
	}
	i, _ := s.SongCursor.Index()
	return s.Songs[i], true
}
