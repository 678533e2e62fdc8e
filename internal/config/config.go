package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/cryogon/Rizumu/internal/browser"
	"github.com/cryogon/Rizumu/internal/rizumu"
)

// Config holds the settings rizumu reads at startup.
type Config struct {
	Server         string        `koanf:"server"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
	Categories     []string      `koanf:"categories"`
	LogLevel       string        `koanf:"log_level"`
	LogFile        string        `koanf:"log_file"`
	Endpoints      Endpoints     `koanf:"endpoints"`

	// Path is the file the config was read from, or "" when defaults were used.
	Path string `koanf:"-"`
}

// Endpoints overrides where listings are fetched from.
type Endpoints struct {
	Items        map[string]string `koanf:"items"`         // category -> path
	DefaultItems string            `koanf:"default_items"` // categories missing from items
	Songs        string            `koanf:"songs"`         // "{id}" is replaced with the item id
}

const (
	defaultConfigFile = "rizumu/config.toml"
	defaultServer     = "http://localhost:8080"
)

// Load reads the config at path. An empty path searches
// $XDG_CONFIG_HOME/rizumu/config.toml and the XDG config dirs. A missing file
// yields defaults.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{}
	if resolved != "" {
		if _, statErr := os.Stat(resolved); statErr == nil {
			parser, err := parserFor(resolved)
			if err != nil {
				return Config{}, err
			}
			k := koanf.New(".")
			if err := k.Load(file.Provider(resolved), parser); err != nil {
				return Config{}, fmt.Errorf("parse config: %w", err)
			}
			if err := k.Unmarshal("", &cfg); err != nil {
				return Config{}, fmt.Errorf("decode config: %w", err)
			}
			cfg.Path = resolved
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return Config{}, fmt.Errorf("open config: %w", statErr)
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.Server = strings.TrimSuffix(strings.TrimSpace(c.Server), "/")
	if c.Server == "" {
		c.Server = defaultServer
	}
	if c.RequestTimeout < 0 {
		c.RequestTimeout = 0
	}

	cats := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		if cat = strings.TrimSpace(cat); cat != "" {
			cats = append(cats, cat)
		}
	}
	if len(cats) == 0 {
		cats = append(cats, browser.DefaultCategories...)
	}
	c.Categories = cats

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogFile = strings.TrimSpace(c.LogFile); c.LogFile != "" {
		c.LogFile = mustExpand(c.LogFile)
	}
}

// Routes merges the configured endpoints over rizumu.DefaultRoutes.
func (c Config) Routes() rizumu.Routes {
	routes := rizumu.DefaultRoutes()
	for cat, path := range c.Endpoints.Items {
		key := strings.ToLower(strings.TrimSpace(cat))
		if path = strings.TrimSpace(path); key != "" && path != "" {
			routes.Items[key] = path
		}
	}
	if p := strings.TrimSpace(c.Endpoints.DefaultItems); p != "" {
		routes.DefaultItems = p
	}
	if p := strings.TrimSpace(c.Endpoints.Songs); p != "" {
		routes.Songs = p
	}
	return routes
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", "":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return YAMLParser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) != "" {
		return expandPath(path)
	}
	found, err := xdg.SearchConfigFile(defaultConfigFile)
	if err != nil {
		// Nothing on disk; run on defaults.
		return "", nil
	}
	return found, nil
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
