// Package rizumu provides the HTTP client for the rizumu music server.
//
// # Overview
//
// The browser needs two listings from the server: the items that belong to a
// library category (playlists, artists, albums, providers) and the songs of a
// single item. Both are plain GET requests answered with a JSON array.
//
// # Endpoints
//
// Routing is category aware. Routes.Items maps a lower-cased category name to
// a path; categories without an entry use Routes.DefaultItems. Songs are
// fetched from Routes.Songs with "{id}" replaced by the item id:
//
//	GET /playlists              -> []Item
//	GET /playlists/42/songs     -> []Song
//
// # Errors
//
// Every failure is returned as *FetchError carrying the operation ("load items
// for Playlists") and the cause:
//
//   - transport errors ("execute request: ...")
//   - *StatusError for 4xx/5xx answers
//   - decode errors when the body is not an array of the expected shape
//
// The client never retries. Callers decide what a failure means for the UI.
//
// # Request Metadata
//
// Each request carries a fresh X-Request-ID (uuid v4) and a rizumu/<version>
// User-Agent. Request id, path, status and latency are logged at debug level
// through the logging package.
package rizumu
