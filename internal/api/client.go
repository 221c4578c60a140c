package api

import (
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// CSRFHeader is the request header carrying the anti-forgery token.
const CSRFHeader = "X-CSRFToken"

// Client provides access to the trading backend's real-time HTTP endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	statusPath    string
	connectPath   string
	streamingPath string

	csrfToken  string // Explicit token; wins over the cookie when set
	csrfCookie string // Cookie name to fall back to

	maxRetries   int
	retryBackoff time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new backend API client.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	jar, _ := cookiejar.New(nil)

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Jar:     jar,
		},
		logger:        slog.Default(),
		statusPath:    "/api/realtime/status/",
		connectPath:   "/api/realtime/connect/",
		streamingPath: "/api/market-data/streaming/",
		csrfCookie:    "csrftoken",
		maxRetries:    3,
		retryBackoff:  time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRetries sets the retry configuration for status queries.
func WithRetries(max int, backoff time.Duration) ClientOption {
	return func(c *Client) {
		c.maxRetries = max
		c.retryBackoff = backoff
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client. A cookie jar is attached if the
// client has none, so CSRF cookies set by the backend are retained.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc.Jar == nil {
			hc.Jar, _ = cookiejar.New(nil)
		}
		c.httpClient = hc
	}
}

// WithCSRFToken sets an explicit CSRF token, taking precedence over cookies.
func WithCSRFToken(token string) ClientOption {
	return func(c *Client) {
		c.csrfToken = token
	}
}

// WithCSRFCookie sets the cookie name the CSRF token falls back to.
func WithCSRFCookie(name string) ClientOption {
	return func(c *Client) {
		c.csrfCookie = name
	}
}

// WithPaths overrides the endpoint paths.
func WithPaths(status, connect, streaming string) ClientOption {
	return func(c *Client) {
		c.statusPath = status
		c.connectPath = connect
		c.streamingPath = streaming
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}
