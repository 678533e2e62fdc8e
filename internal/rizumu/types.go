package rizumu

import (
	"time"
)

const rizumuTimestampLayout = "2006-01-02 15:04:05"

// Item mirrors one element of an items listing (/playlists and friends).
type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"image_url"`
	UserID      int64  `json:"user_id"`
	Description string `json:"description"`
	SourceType  string `json:"source_type"`
	CreatedAt   string `json:"created_at"`
	SongCount   int64  `json:"song_count"`
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp, or the zero time
// when the server sent something unparseable.
func (i Item) ParsedCreatedAt() time.Time {
	return parseTime(i.CreatedAt)
}

// Song mirrors one element of a songs listing.
type Song struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Duration string `json:"duration"`
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(rizumuTimestampLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
