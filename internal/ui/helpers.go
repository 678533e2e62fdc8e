package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/cryogon/Rizumu/internal/rizumu"
)

// truncate shortens s to fit width terminal cells, marking the cut with an
// ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// padRight fills s with spaces up to width cells.
func padRight(s string, width int) string {
	return runewidth.FillRight(truncate(s, width), width)
}

// visibleWindow returns the [start, end) slice of an n-row list that fits in
// rows lines while keeping cursor in view.
func visibleWindow(cursor, n, rows int) (int, int) {
	if rows <= 0 || n <= 0 {
		return 0, 0
	}
	if n <= rows {
		return 0, n
	}
	if cursor < 0 {
		cursor = 0
	}
	start := cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > n {
		start = n - rows
	}
	return start, start + rows
}

// listRow renders one list entry with the selection marker when selected.
func listRow(label string, selected bool, width int) string {
	prefix := strings.Repeat(" ", len(SelectionMarker))
	if selected {
		prefix = SelectionMarker
	}
	return prefix + truncate(label, width-len(prefix))
}

// itemDetail summarizes an item for the line under the browser list.
func itemDetail(item rizumu.Item, now time.Time) string {
	parts := []string{songCount(item.SongCount)}
	if created := item.ParsedCreatedAt(); !created.IsZero() {
		parts = append(parts, "added "+humanize.RelTime(created, now, "ago", "from now"))
	}
	if src := strings.TrimSpace(item.SourceType); src != "" {
		parts = append(parts, src)
	}
	return strings.Join(parts, " · ")
}

func songCount(n int64) string {
	if n == 1 {
		return "1 song"
	}
	return fmt.Sprintf("%s songs", humanize.Comma(n))
}

// lastUpdatedLabel renders how long ago the view last changed.
func lastUpdatedLabel(t, now time.Time) string {
	if t.IsZero() {
		return "waiting"
	}
	if now.Sub(t) < time.Second {
		return "just now"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
