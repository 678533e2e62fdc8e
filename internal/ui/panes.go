package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/cryogon/Rizumu/internal/browser"
)

// renderPane frames body lines with a title. width and height include the
// border.
func (m Model) renderPane(title string, lines []string, width, height int, focused bool) string {
	styles := m.theme.Styles()
	frame := styles.Pane
	titleStyle := styles.Title
	if focused {
		frame = styles.PaneFocused
		titleStyle = styles.TitleFocused
	}

	innerW := max(width-2, 1)
	innerH := max(height-2, 1)

	content := make([]string, 0, innerH)
	content = append(content, titleStyle.Render(truncate(" "+title+" ", innerW)))
	for _, line := range lines {
		if len(content) == innerH {
			break
		}
		content = append(content, line)
	}

	return frame.
		Width(innerW).
		Height(innerH).
		MaxHeight(height).
		Render(strings.Join(content, "\n"))
}

// renderCategories draws the Library pane.
func (m Model) renderCategories(snap browser.Snapshot, width, height int) string {
	styles := m.theme.Styles()
	innerW := width - 2
	rows := height - 3 // border + title

	cursor, _ := snap.CategoryCursor.Index()
	start, end := visibleWindow(cursor, len(snap.Categories), rows)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		selected := snap.CategoryCursor.Valid(len(snap.Categories)) && i == cursor
		row := listRow(snap.Categories[i], selected, innerW)
		if selected {
			row = styles.Selected.Render(padRight(row, innerW))
		} else {
			row = styles.Text.Render(row)
		}
		lines = append(lines, row)
	}
	return m.renderPane("Library", lines, width, height, snap.Focus == browser.FocusTab)
}

// renderItems draws the Browser pane with a detail line for the selection.
func (m Model) renderItems(snap browser.Snapshot, width, height int, now time.Time) string {
	styles := m.theme.Styles()
	innerW := width - 2
	rows := height - 3
	title := "Browser"
	if cat, ok := snap.SelectedCategory(); ok {
		title = "Browser · " + cat
	}

	var lines []string
	item, hasItem := snap.SelectedItem()
	if hasItem {
		rows -= 2
	}

	if len(snap.Items) == 0 {
		msg := "Nothing here yet"
		if snap.Loading {
			msg = "Loading…"
		}
		lines = append(lines, styles.MutedText.Render("   "+msg))
	}

	cursor, _ := snap.ItemCursor.Index()
	start, end := visibleWindow(cursor, len(snap.Items), rows)
	for i := start; i < end; i++ {
		selected := hasItem && i == cursor
		row := listRow(snap.Items[i].Name, selected, innerW)
		if selected {
			row = styles.Selected.Render(padRight(row, innerW))
		} else {
			row = styles.Text.Render(row)
		}
		lines = append(lines, row)
	}

	if hasItem {
		for len(lines) < rows {
			lines = append(lines, "")
		}
		lines = append(lines, styles.FaintText.Render(strings.Repeat("─", max(innerW, 0))))
		lines = append(lines, styles.MutedText.Render(truncate(itemDetail(item, now), innerW)))
	}

	return m.renderPane(title, lines, width, height, snap.Focus == browser.FocusBrowser)
}

// songColumns splits the table width into Title, Artist and Length columns.
func songColumns(width int) []table.Column {
	// Each cell carries one column of padding on both sides.
	avail := max(width-6, 3)
	title := avail * TitleColumnPercent / 100
	artist := avail * ArtistColumnPercent / 100
	length := avail - title - artist
	return []table.Column{
		{Title: "Title", Width: title},
		{Title: "Artist", Width: artist},
		{Title: "Length", Width: length},
	}
}

// renderSongs draws the Songs pane as a table.
func (m Model) renderSongs(snap browser.Snapshot, width, height int) string {
	styles := m.theme.Styles()
	innerW := width - 2
	innerH := height - 3
	focused := snap.Focus == browser.FocusContent

	if len(snap.Songs) == 0 {
		msg := "Open an item to list its songs"
		if snap.Loading && focused {
			msg = "Loading…"
		}
		return m.renderPane("Songs", []string{styles.MutedText.Render("   " + msg)}, width, height, focused)
	}

	cursor, _ := snap.SongCursor.Index()
	rows := make([]table.Row, len(snap.Songs))
	for i, song := range snap.Songs {
		title := "   " + song.Title
		if i == cursor && snap.SongCursor.Valid(len(snap.Songs)) {
			title = SelectionMarker + song.Title
		}
		rows[i] = table.Row{title, song.Artist, song.Duration}
	}

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		BorderBottom(true).
		Foreground(lipgloss.Color(m.theme.Muted)).
		Bold(true)
	ts.Cell = ts.Cell.Foreground(lipgloss.Color(m.theme.Text))
	ts.Selected = styles.Selected
	if !focused {
		ts.Selected = ts.Selected.Background(lipgloss.Color(m.theme.Surface))
	}

	t := table.New(
		table.WithColumns(songColumns(innerW)),
		table.WithRows(rows),
		table.WithHeight(max(innerH, 2)),
		table.WithWidth(innerW),
		table.WithFocused(focused),
		table.WithStyles(ts),
	)
	t.SetCursor(cursor)

	return m.renderPane("Songs", strings.Split(t.View(), "\n"), width, height, focused)
}

// renderBody lays out the three panes.
func (m Model) renderBody(width, height int, now time.Time) string {
	snap := m.snapshot.Snapshot

	leftW := max(width*LeftColumnPercent/100, MinLeftColumnWidth)
	if leftW > width-10 {
		leftW = width / 2
	}
	rightW := width - leftW

	catH := len(snap.Categories) + 3
	if catH > height/2 {
		catH = height / 2
	}
	itemsH := height - catH

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderCategories(snap, leftW, catH),
		m.renderItems(snap, leftW, itemsH, now),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, m.renderSongs(snap, rightW, height))
}
