package app

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/cryogon/Rizumu/internal/browser"
	"github.com/cryogon/Rizumu/internal/config"
	"github.com/cryogon/Rizumu/internal/logging"
	"github.com/cryogon/Rizumu/internal/prefs"
	"github.com/cryogon/Rizumu/internal/rizumu"
	"github.com/cryogon/Rizumu/internal/state"
	"github.com/cryogon/Rizumu/internal/ui"
)

// Options configure the rizumu application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses $XDG_CONFIG_HOME/rizumu/prefs.toml
	Server     string // overrides the configured server
	LogLevel   string // overrides the configured level

	// ProgramOptions are appended to the Bubble Tea program options.
	ProgramOptions []tea.ProgramOption
}

// Run boots the rizumu TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if s := strings.TrimSpace(opts.Server); s != "" {
		cfg.Server = s
	}
	level := cfg.LogLevel
	if l := strings.TrimSpace(opts.LogLevel); l != "" {
		level = l
	}

	if err := logging.Initialize(level, cfg.LogFile); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logging.Sync()

	logging.Info("starting rizumu",
		zap.String("server", cfg.Server),
		zap.String("config", cfg.Path),
		zap.Strings("categories", cfg.Categories),
	)

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := rizumu.NewClient(cfg.Server,
		rizumu.WithTimeout(cfg.RequestTimeout),
		rizumu.WithRoutes(cfg.Routes()),
	)
	if err != nil {
		return fmt.Errorf("init rizumu client: %w", err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := &state.Store{}
	keys := browser.NewChanPoller(keyBuffer)
	loop := browser.NewLoop(browser.NewMachine(cfg.Categories), client, store, browser.DefaultEventBuffer)
	source := &browser.Source{Poller: keys, Window: browser.DefaultPollWindow}

	program := ui.NewProgram(ui.Options{
		Context:   runCtx,
		Store:     store,
		Keys:      keys,
		Server:    client.BaseURL(),
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		LogPath:   logging.Path(),
	}, opts.ProgramOptions...)

	p := startPipeline(runCtx, source, loop, cancel)

	// Whoever finishes first (loop, source or signal) closes the program.
	go func() {
		<-runCtx.Done()
		program.Quit()
	}()

	_, runErr := program.Run()
	cancel()
	keys.Close()
	pipeErr := p.wait()

	if runErr != nil {
		return fmt.Errorf("run ui: %w", runErr)
	}
	if pipeErr != nil {
		return pipeErr
	}
	logging.Info("rizumu stopped")
	return nil
}
