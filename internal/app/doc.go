// Package app provides the orchestration layer for rizumu.
//
// # Overview
//
// This package wires together configuration, logging, the HTTP client, the
// navigation core and the UI. It is the composition root: every dependency
// is built here and handed to the pieces that need it.
//
// # Architecture
//
//  1. Load config (koanf; TOML or YAML) and apply command-line overrides
//  2. Initialize the zap file logger
//  3. Load UI preferences (theme)
//  4. Build the rizumu HTTP client with the configured routes and timeout
//  5. Create the state.Store, the key poller, the Machine and the Loop
//  6. Start the event source and the loop in the background
//  7. Run the Bubble Tea program and block until it exits
//
// # Data Flow
//
//	┌────────────┐ keys  ┌─────────────┐ Input/Tick ┌─────────────┐
//	│ ui.Model   │──────▶│ ChanPoller  │──Source───▶│ browser.Loop│
//	│ (Bubble    │       └─────────────┘            │  Machine    │
//	│  Tea)      │                                  │  fetches ───┼──▶ rizumu.Client
//	│            │◀──── state.Store ◀── Render ─────┤             │
//	└────────────┘                                  └─────────────┘
//
// # Shutdown
//
// A quit key ends the loop. Loop exit, a fatal poll error or a cancelled
// parent context all cancel the run context, which closes the program. Run
// then closes the key poller and waits for both background goroutines so no
// fetch outlives it.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config that cannot be read or parsed
//   - Unknown log level or unwritable log file
//   - Invalid server URL
//   - Terminal I/O failure inside Bubble Tea
//
// Recoverable errors (logged and shown in the footer):
//   - Failed item or song fetches
//   - Preferences that cannot be saved
package app
