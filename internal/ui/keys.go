package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cryogon/Rizumu/internal/browser"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Navigation, forwarded to the dispatch loop
	Quit     key.Binding
	Down     key.Binding
	Up       key.Binding
	Right    key.Binding
	Left     key.Binding
	Activate key.Binding

	// Handled by the UI
	Help        key.Binding
	CycleTheme  key.Binding
	Diagnostics key.Binding
	Close       key.Binding
	Refresh     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j/down", "Move down"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k/up", "Move up"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("l/right", "Focus right"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("h/left", "Focus left"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Diagnostics: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Diagnostics log"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q", "?", "L"),
			key.WithHelp("esc", "Close"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload log"),
		),
	}
}

// navigationKey maps a key press to the navigation key it stands for.
func (k keyMap) navigationKey(msg tea.KeyMsg) (browser.Key, bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return browser.KeyQuit, true
	case key.Matches(msg, k.Down):
		return browser.KeyNext, true
	case key.Matches(msg, k.Up):
		return browser.KeyPrev, true
	case key.Matches(msg, k.Right):
		return browser.KeyRight, true
	case key.Matches(msg, k.Left):
		return browser.KeyLeft, true
	case key.Matches(msg, k.Activate):
		return browser.KeyActivate, true
	}
	return browser.KeyNone, false
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Right, k.Activate, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Activate},
		{k.CycleTheme, k.Diagnostics, k.Help, k.Quit},
	}
}
