// Package state provides thread-safe state sharing between the dispatch loop
// and the terminal UI.
//
// # Overview
//
// The dispatch loop owns the navigation state machine and publishes a
// snapshot after every event. The UI runs on its own goroutine and must never
// be blocked by, or block, the loop. Store sits between the two:
//
//	Loop goroutine:                  UI goroutine:
//	┌──────────────────┐            ┌──────────────────┐
//	│ machine.Apply()  │            │ <-store.Changed()│
//	│      ↓           │            │      ↓           │
//	│ store.Render()   │───────────→│ store.Snapshot() │
//	│      ↓           │  (mutex)   │      ↓           │
//	│ next event...    │            │ View()           │
//	└──────────────────┘            └──────────────────┘
//
// # Concurrency Model
//
// The Store uses a readers-writer lock:
//
//   - Render(): acquires the write lock, replaces the snapshot and signals
//     a one-slot channel without blocking
//   - Snapshot(): acquires the read lock and returns a deep copy
//
// Several renders between two reads collapse into one signal. Readers always
// see the latest state, never an intermediate one they must replay.
//
// # Zero Value
//
// The zero Store is ready to use. Snapshot returns a zero value with
// HasState false until the first Render.
package state
