// Package browser holds the navigation core of rizumu, independent of any
// terminal toolkit.
//
// Three panes are navigated with a small key set:
//
//	Tab      library categories (Playlists, Artists, Albums, Provider)
//	Browser  items of the active category
//	Content  songs of the activated item
//
// A Source polls for keys in fixed windows and emits Input or Tick events.
// The Loop consumes them one at a time, folds each into the Machine, starts
// any fetch the transition asked for on a background goroutine and hands a
// Snapshot to the Renderer after every event. Fetch results re-enter the
// same stream, so the Machine is only touched by the Loop goroutine.
//
// Each fetch carries a per-pane sequence number. A result whose number is not
// the latest issued for its pane is discarded without changing state.
package browser
