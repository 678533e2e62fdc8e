package rizumu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cryogon/Rizumu/internal/logging"
)

// Fetcher lists category items and item songs. It is implemented by *Client
// and satisfied by stubs in tests.
type Fetcher interface {
	FetchItems(ctx context.Context, category string) ([]Item, error)
	FetchSongs(ctx context.Context, itemID int64) ([]Song, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Version is reported in the User-Agent header.
var Version = "0.1"

// Routes maps categories to the endpoints that list their items.
type Routes struct {
	// Items is keyed by lower-cased category name.
	Items map[string]string
	// DefaultItems serves categories missing from Items.
	DefaultItems string
	// Songs is a path template; "{id}" is replaced with the item id.
	Songs string
}

const (
	defaultServer        = "http://localhost:8080"
	defaultItemsPath     = "/playlists"
	defaultSongsPath     = "/playlists/{id}/songs"
	songsPathPlaceholder = "{id}"
)

// DefaultRoutes returns the routing used when none is configured.
func DefaultRoutes() Routes {
	return Routes{
		Items: map[string]string{
			"playlists": "/playlists",
			"artists":   "/artists",
			"albums":    "/albums",
			"provider":  "/providers",
		},
		DefaultItems: defaultItemsPath,
		Songs:        defaultSongsPath,
	}
}

// ItemsPath resolves the endpoint for category.
func (r Routes) ItemsPath(category string) string {
	key := strings.ToLower(strings.TrimSpace(category))
	if path := strings.TrimSpace(r.Items[key]); path != "" {
		return path
	}
	if path := strings.TrimSpace(r.DefaultItems); path != "" {
		return path
	}
	return defaultItemsPath
}

// SongsPath resolves the endpoint for an item's songs.
func (r Routes) SongsPath(itemID int64) string {
	tmpl := strings.TrimSpace(r.Songs)
	if tmpl == "" {
		tmpl = defaultSongsPath
	}
	return strings.ReplaceAll(tmpl, songsPathPlaceholder, strconv.FormatInt(itemID, 10))
}

// FetchError reports a failed listing request. It unwraps to the transport,
// status or decode error underneath.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// StatusError is returned when the server answers with a 4xx or 5xx status.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.Code)
}

// Client talks to the rizumu HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	routes    Routes
	userAgent string
}

// Option customises a Client.
type Option func(*Client)

// WithTimeout bounds every request. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithRoutes overrides the endpoint routing.
func WithRoutes(r Routes) Option {
	return func(c *Client) {
		c.routes = r
	}
}

// WithHTTPClient swaps the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a Client for the server base URL (host:port or full URL).
func NewClient(server string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(server)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{},
		routes:    DefaultRoutes(),
		userAgent: "rizumu/" + Version,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the server the client talks to.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchItems lists the items belonging to category.
func (c *Client) FetchItems(ctx context.Context, category string) ([]Item, error) {
	op := fmt.Sprintf("load items for %s", category)
	if c == nil {
		return nil, &FetchError{Op: op, Err: errors.New("client is nil")}
	}
	var payload []Item
	if err := c.get(ctx, c.routes.ItemsPath(category), &payload); err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}
	return payload, nil
}

// FetchSongs lists the songs of the item with the given id.
func (c *Client) FetchSongs(ctx context.Context, itemID int64) ([]Song, error) {
	op := fmt.Sprintf("load songs for item %d", itemID)
	if c == nil {
		return nil, &FetchError{Op: op, Err: errors.New("client is nil")}
	}
	var payload []Song
	if err := c.get(ctx, c.routes.SongsPath(itemID), &payload); err != nil {
		return nil, &FetchError{Op: op, Err: err}
	}
	return payload, nil
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	rel, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("parse path %q: %w", path, err)
	}
	return c.doURL(ctx, http.MethodGet, rel, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logging.Debug("request failed",
			zap.String("request_id", requestID),
			zap.String("path", rel.String()),
			zap.Error(err),
		)
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	logging.Debug("request completed",
		zap.String("request_id", requestID),
		zap.String("path", rel.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(started)),
	)

	if resp.StatusCode >= 400 {
		return &StatusError{Path: rel.String(), Code: resp.StatusCode}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(server string) (*url.URL, error) {
	trimmed := strings.TrimSpace(server)
	if trimmed == "" {
		trimmed = defaultServer
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server %q: %w", server, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse server %q: missing host", server)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
