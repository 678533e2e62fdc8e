// Package ui provides the terminal front end for rizumu.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. It owns the terminal: raw mode, key
// decoding and painting. It does not own navigation state. Key presses that
// mean something to the library browser are translated to browser.Key values
// and pushed to the dispatch loop through a KeySink; the loop publishes a
// snapshot to state.Store after every event and the model repaints from it.
//
//	tea.KeyMsg ──navigationKey──▶ KeySink.Push ──▶ browser.Loop
//	                                                     │
//	View() ◀── snapshotChangedMsg ◀── state.Store ◀──────┘
//
// # Package Structure
//
//   - app.go: Model, Update/View, key routing, snapshot commands
//   - panes.go: Library, Browser and Songs panes and the body layout
//   - keys.go: key bindings and their mapping to navigation keys
//   - help.go, diagnostics.go, modal.go: overlays
//   - theme.go: palettes and lipgloss styles
//   - helpers.go: width-aware truncation and humanized labels
//
// # Layout
//
// The left 30% of the screen stacks the Library pane (categories) over the
// Browser pane (items of the active category, with a detail line for the
// highlighted item). The Songs pane fills the rest with a Title/Artist/Length
// table. The focused pane gets the accent border. The footer shows a spinner
// while a fetch is outstanding, the last fetch error otherwise, and the short
// help.
//
// # Key Bindings
//
//   - j/down, k/up: Move the cursor of the focused pane
//   - l/right, h/left: Move focus between panes
//   - enter: Open the highlighted category or item
//   - ?: Help overlay
//   - T: Cycle theme (saved to prefs)
//   - L: Diagnostics overlay showing the tail of the log file
//   - q or Ctrl+C: Quit
package ui
