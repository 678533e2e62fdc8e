// Rizumu is a keyboard-driven terminal browser for a rizumu music library.
//
// It lists library categories, the playlists, artists or albums inside them,
// and the songs of whatever you open, fetching everything from a rizumu
// server over HTTP.
//
// Usage:
//
//	rizumu [flags]
//	rizumu version
//
// See 'rizumu --help' for available flags.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cryogon/Rizumu/internal/app"
	"github.com/cryogon/Rizumu/internal/rizumu"
)

// Set at build time with -ldflags "-X main.commit=...".
var commit = "dev"

var (
	configPath string
	prefsPath  string
	serverURL  string
	logLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rizumu: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rizumu",
	Short: "Browse a rizumu music library from the terminal",
	Long: `Browse a rizumu music library from the terminal.

The left column lists library categories and the items of the active
category; the right pane lists the songs of the opened item. Use h/j/k/l or
the arrow keys to move, enter to open, ? for help and q to quit.`,
	Version:       rizumu.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBrowser,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/rizumu/config.toml)")
	rootCmd.Flags().StringVar(&prefsPath, "prefs", "", "preferences file (default $XDG_CONFIG_HOME/rizumu/prefs.toml)")
	rootCmd.Flags().StringVar(&serverURL, "server", "", "rizumu server URL, overrides the config")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("rizumu %s (commit: %s)\n", rizumu.Version, commit)
	},
}

func runBrowser(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("rizumu needs an interactive terminal")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return app.Run(ctx, app.Options{
		ConfigPath: configPath,
		PrefsPath:  prefsPath,
		Server:     serverURL,
		LogLevel:   logLevel,
	})
}
