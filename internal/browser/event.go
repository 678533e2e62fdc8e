package browser

import (
	"github.com/cryogon/Rizumu/internal/rizumu"
)

// Key is a decoded navigation key.
type Key int

const (
	KeyNone Key = iota
	KeyQuit
	KeyNext
	KeyPrev
	KeyRight
	KeyLeft
	KeyActivate
)

func (k Key) String() string {
	switch k {
	case KeyQuit:
		return "quit"
	case KeyNext:
		return "next"
	case KeyPrev:
		return "prev"
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	case KeyActivate:
		return "activate"
	default:
		return "none"
	}
}

// EventKind identifies what an Event carries.
type EventKind int

const (
	EventTick EventKind = iota
	EventInput
	EventItemsLoaded
	EventSongsLoaded
)

func (k EventKind) String() string {
	switch k {
	case EventInput:
		return "input"
	case EventItemsLoaded:
		return "items-loaded"
	case EventSongsLoaded:
		return "songs-loaded"
	default:
		return "tick"
	}
}

// Event is one entry of the merged stream consumed by the Loop.
type Event struct {
	Kind EventKind

	// Input
	Key Key

	// Fetch completions. Seq identifies the request that produced the result.
	Seq   uint64
	Items []rizumu.Item
	Songs []rizumu.Song
	Err   error
}

// TickEvent returns a heartbeat event.
func TickEvent() Event { return Event{Kind: EventTick} }

// InputEvent wraps a key press.
func InputEvent(k Key) Event { return Event{Kind: EventInput, Key: k} }

// FetchKind says which listing a FetchRequest asks for.
type FetchKind int

const (
	FetchItems FetchKind = iota + 1
	FetchSongs
)

// FetchRequest describes a listing the Loop must fetch in the background.
type FetchRequest struct {
	Kind     FetchKind
	Seq      uint64
	Category string
	ItemID   int64
}

// Effect is the side effect requested by a state transition.
type Effect struct {
	Quit  bool
	Fetch *FetchRequest

	// Discarded is set when a completion was dropped because a newer request
	// for the same pane superseded it.
	Discarded bool
}
