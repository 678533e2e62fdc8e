// Package logtail reads the tail of rizumu's log file for the diagnostics
// overlay.
//
// # Reading
//
// Read scans the file once and keeps only a bounded window of lines, so a
// long-lived log does not have to fit in memory:
//
//	lines, err := logtail.Read(logging.Path(), 200)
//
// A missing file is not an error; logging may simply be disabled.
//
// # Parsing
//
// The logger writes console-encoded lines: time, level, caller, message and
// an optional JSON object of fields, separated by tabs. Parse splits such a
// line into an Entry so the UI can colour it by level. Anything else (a
// panic trace, a line written by hand) is kept whole in Entry.Message.
package logtail
