package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/cryogon/Rizumu/internal/browser"
	"github.com/cryogon/Rizumu/internal/logging"
	"github.com/cryogon/Rizumu/internal/prefs"
	"github.com/cryogon/Rizumu/internal/state"
)

// KeySink receives navigation keys for the dispatch loop.
type KeySink interface {
	Push(ctx context.Context, k browser.Key) error
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Keys      KeySink
	Server    string
	ThemeName string
	PrefsPath string
	LogPath   string
}

// Model is the root application state for Bubble Tea. Navigation state lives
// in the dispatch loop; the model only mirrors the latest snapshot.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	sink      KeySink
	server    string
	prefsPath string
	logPath   string

	// UI state
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	theme   Theme
	width   int
	height  int
	ready   bool
	modal   Modal

	// Data state
	snapshot state.Snapshot
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.DefaultTheme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(themeName)
	return Model{
		ctx:       ctx,
		store:     opts.Store,
		sink:      opts.Keys,
		server:    opts.Server,
		prefsPath: prefsPath,
		logPath:   opts.LogPath,
		keys:      DefaultKeyMap(),
		help:      newHelp(theme),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(theme.Styles().AccentText)),
		theme:     theme,
	}
}

func newHelp(theme Theme) help.Model {
	h := help.New()
	styles := theme.Styles()
	h.Styles.ShortKey = styles.WarningText
	h.Styles.ShortDesc = styles.MutedText
	h.Styles.ShortSeparator = styles.FaintText
	return h
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store), waitForSnapshotCmd(m.ctx, m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case snapshotChangedMsg:
		m.snapshot = state.Snapshot(msg)
		return m, waitForSnapshotCmd(m.ctx, m.store)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.modal != nil {
		var cmd tea.Cmd
		var closed bool
		m.modal, cmd, closed = m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		}
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain(time.Now())
}

// handleKey routes a key to the open modal, a UI action, or the loop.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal != nil {
		var cmd tea.Cmd
		var closed bool
		m.modal, cmd, closed = m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.modal = helpModal{}
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(GetTheme(NextTheme(m.theme.Name)))
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			logging.Warn("save preferences failed", zap.String("path", m.prefsPath), zap.Error(err))
		}
		return m, nil

	case key.Matches(msg, m.keys.Diagnostics):
		d, cmd := newDiagnosticsModal(m.logPath)
		m.modal = d
		return m, cmd
	}

	k, ok := m.keys.navigationKey(msg)
	if !ok {
		return m, nil
	}
	return m, m.forward(k)
}

// forward hands k to the loop. When the loop is gone a quit key still ends
// the program.
func (m Model) forward(k browser.Key) tea.Cmd {
	if m.sink == nil {
		if k == browser.KeyQuit {
			return tea.Quit
		}
		return nil
	}
	if err := m.sink.Push(m.ctx, k); err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, browser.ErrInputClosed) {
			logging.Warn("forward key failed", zap.Stringer("key", k), zap.Error(err))
		}
		if k == browser.KeyQuit {
			return tea.Quit
		}
	}
	return nil
}

func (m *Model) setTheme(t Theme) {
	m.theme = t
	m.help = newHelp(t)
	m.help.Width = m.width
	m.spinner.Style = t.Styles().AccentText
}

// renderMain renders the header, the panes and the footer.
func (m Model) renderMain(now time.Time) string {
	header := m.renderHeader(now)
	footer := m.renderFooter()
	bodyH := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 6)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.renderBody(m.width, bodyH, now),
		footer,
	)
}

func (m Model) renderHeader(now time.Time) string {
	styles := m.theme.Styles()
	left := styles.Logo.Render("rizumu")
	if m.server != "" {
		left += styles.MutedText.Render("  " + m.server)
	}
	right := styles.FaintText.Render("updated " + lastUpdatedLabel(m.snapshot.LastUpdated, now))

	gap := max(m.width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	snap := m.snapshot.Snapshot

	helpView := m.help.View(m.keys)
	avail := max(m.width-3-lipgloss.Width(helpView), 0)

	var status string
	switch {
	case snap.Loading:
		status = m.spinner.View() + styles.MutedText.Render(" Loading…")
	case snap.LastError != "":
		status = styles.DangerText.Render(truncate(snap.LastError, avail))
	default:
		status = styles.FaintText.Render("Focus: " + focusLabel(snap.Focus))
	}

	gap := max(m.width-2-lipgloss.Width(status)-lipgloss.Width(helpView), 1)
	return styles.Footer.Render(status + strings.Repeat(" ", gap) + helpView)
}

func focusLabel(f browser.Focus) string {
	switch f {
	case browser.FocusTab:
		return "Library"
	case browser.FocusContent:
		return "Songs"
	default:
		return "Browser"
	}
}

// Messages

type snapshotMsg state.Snapshot

type snapshotChangedMsg state.Snapshot

// Commands

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// waitForSnapshotCmd blocks until the loop renders again.
func waitForSnapshotCmd(ctx context.Context, store *state.Store) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-store.Changed():
			return snapshotChangedMsg(store.Snapshot())
		case <-ctx.Done():
			return nil
		}
	}
}

// NewProgram builds the Bubble Tea program for opts.
func NewProgram(opts Options, programOpts ...tea.ProgramOption) *tea.Program {
	programOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)
	return tea.NewProgram(New(opts), programOpts...)
}
