package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rxtrade/binance-stream/apicode"
)

// Market selects which venue market the client talks to.
type Market int

const (
	Spot Market = iota
	Futures
)

func (m Market) String() string {
	switch m {
	case Spot:
		return "spot"
	case Futures:
		return "futures"
	default:
		return "unknown"
	}
}

// host returns the production API host for the market.
func (m Market) host() string {
	if m == Futures {
		return "https://fapi.binance.com"
	}
	return "https://api.binance.com"
}

// pathPrefix returns the versioned path root for the market.
func (m Market) pathPrefix() string {
	if m == Futures {
		return "/fapi/v1"
	}
	return "/api/v3"
}

// codeTable returns the error-code table for the market's API band.
func (m Market) codeTable() apicode.Table {
	if m == Futures {
		return apicode.Futures
	}
	return apicode.Spot
}

// Client provides access to the venue's REST market-data API.
type Client struct {
	market     Market
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger

	maxRetries   int
	retryBackoff time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a REST client for the given market.
func NewClient(market Market, opts ...ClientOption) *Client {
	c := &Client{
		market:  market,
		baseURL: market.host(),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:       slog.Default(),
		maxRetries:   3,
		retryBackoff: time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithBaseURL overrides the market's production host.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithAPIKey sets the API key sent on endpoints that require one.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRetries sets the retry configuration.
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

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}
