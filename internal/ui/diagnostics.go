package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cryogon/Rizumu/internal/logtail"
)

type diagnosticsLoadedMsg struct {
	entries []logtail.Entry
	err     error
}

func loadDiagnosticsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		entries, err := logtail.Tail(path, DiagnosticsLines)
		return diagnosticsLoadedMsg{entries: entries, err: err}
	}
}

// diagnosticsModal shows the tail of the log file.
type diagnosticsModal struct {
	path    string
	entries []logtail.Entry
	err     error
	loaded  bool
	scroll  int // lines scrolled up from the bottom
}

func newDiagnosticsModal(path string) (diagnosticsModal, tea.Cmd) {
	d := diagnosticsModal{path: path}
	if path == "" {
		d.loaded = true
		return d, nil
	}
	return d, loadDiagnosticsCmd(path)
}

func (d diagnosticsModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case diagnosticsLoadedMsg:
		d.entries = msg.entries
		d.err = msg.err
		d.loaded = true
		d.scroll = 0
		return d, nil, false
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Close):
			return d, nil, true
		case key.Matches(msg, keys.Refresh):
			if d.path != "" {
				return d, loadDiagnosticsCmd(d.path), false
			}
		case key.Matches(msg, keys.Up):
			if d.scroll < len(d.entries)-1 {
				d.scroll++
			}
		case key.Matches(msg, keys.Down):
			if d.scroll > 0 {
				d.scroll--
			}
		}
	}
	return d, nil, false
}

func (d diagnosticsModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	modalWidth := width * 4 / 5
	inner := modalWidth - 4
	rows := height - 10
	if rows < 3 {
		rows = 3
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Diagnostics"))
	if d.path != "" {
		b.WriteString("  ")
		b.WriteString(styles.FaintText.Render(truncate(d.path, inner-14)))
	}
	b.WriteString("\n\n")

	switch {
	case d.path == "":
		b.WriteString(styles.MutedText.Render("Logging is disabled. Set log_level or RIZUMU_LOG_LEVEL."))
	case !d.loaded:
		b.WriteString(styles.MutedText.Render("Reading log…"))
	case d.err != nil:
		b.WriteString(styles.DangerText.Render("Failed to read log: " + d.err.Error()))
	case len(d.entries) == 0:
		b.WriteString(styles.MutedText.Render("No log entries yet."))
	default:
		end := len(d.entries) - d.scroll
		start := end - rows
		if start < 0 {
			start = 0
		}
		for i := start; i < end; i++ {
			b.WriteString(d.renderEntry(styles, d.entries[i], inner))
			if i < end-1 {
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render("esc close · r reload · j/k scroll"))

	return placeModal(theme, width, height, modalWidth, b.String())
}

func (d diagnosticsModal) renderEntry(styles Styles, e logtail.Entry, width int) string {
	if e.Level == "" {
		return styles.MutedText.Render(truncate(e.Message, width))
	}
	level := padRight(e.Level, 5)
	text := e.Message
	if e.Fields != "" {
		text += " " + e.Fields
	}
	return styles.LevelStyle(e.Level).Render(level) + " " + styles.Text.Render(truncate(text, width-6))
}
