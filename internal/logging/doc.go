// Package logging provides structured logging for rizumu.
//
// The terminal belongs to the UI, so logs never go to stdout. Initialize
// opens a zap logger writing console-encoded lines to a file
// ($XDG_STATE_HOME/rizumu/rizumu.log unless configured). Without a level the
// logger stays a no-op:
//
//	if err := logging.Initialize(cfg.LogLevel, cfg.LogFile); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.Warn("fetch failed",
//	    zap.String("category", "Playlists"),
//	    zap.Error(err),
//	)
//
// All functions are safe for concurrent use.
package logging
