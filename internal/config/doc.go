// Package config handles loading rizumu's configuration file.
//
// # Overview
//
// Configuration is optional. Without a file rizumu talks to
// http://localhost:8080 and shows the Playlists, Artists, Albums and Provider
// categories.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, search $XDG_CONFIG_HOME/rizumu/config.toml, then each of
//     $XDG_CONFIG_DIRS
//  3. If no file exists, fall back to defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// Files ending in .yaml or .yml are parsed as YAML, everything else as TOML.
// Both are loaded through koanf.
//
// # TOML Format
//
//	server = "http://media-box:8080"
//	request_timeout = "5s"
//	categories = ["Playlists", "Artists", "Albums", "Provider"]
//	log_level = "info"
//	log_file = "~/.local/state/rizumu/rizumu.log"
//
//	[endpoints]
//	default_items = "/playlists"
//	songs = "/playlists/{id}/songs"
//
//	[endpoints.items]
//	artists = "/artists"
//
// Endpoint keys are matched against category names case-insensitively.
// Tilde expansion is performed on log_file and on the config path itself.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - Stat errors other than os.ErrNotExist
//   - Unsupported file extensions
//   - Parse and decode errors
//
// A missing config file is NOT an error.
package config
