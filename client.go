package wechat

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/authbridge/wechat-oauth/instrumentation"
)

// Config holds the options for constructing a Client.
type Config struct {
	// Settings are the process-wide protocol settings: appid, secret,
	// redirect URI, and optional endpoint overrides. Loaded once at
	// startup (see LoadSettings) and merged over the built-in defaults
	// on every call.
	Settings Settings

	// HTTPClient is an optional custom HTTP client. When nil, a default
	// client with RequestTimeout is used.
	HTTPClient *http.Client

	// RequestTimeout bounds provider requests whose context carries no
	// deadline of its own (default: 30s).
	RequestTimeout time.Duration

	// Logger for structured logging (optional, uses slog.Default if not
	// provided). Sensitive query values are masked before logging.
	Logger *slog.Logger

	// RateLimit caps outbound provider calls in requests per second.
	// WeChat enforces per-app API quotas; zero means no client-side limit.
	RateLimit float64

	// RateBurst is the burst size for RateLimit (default: 1 when
	// RateLimit is set).
	RateBurst int

	// Instrumentation enables OpenTelemetry metrics for provider calls.
	// When nil, no metrics are recorded.
	Instrumentation *instrumentation.Instrumentation
}

// Client performs WeChat OAuth2 authorization code flows. All methods are
// stateless and safe for concurrent use: one login flow maps to one
// independent call, and a failed or timed-out request fails only the flow
// that issued it.
type Client struct {
	settings   Settings
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
	limiter    *rate.Limiter
	inst       *instrumentation.Instrumentation
}

// New creates a Client. It performs no validation of the settings: a
// missing appid or secret is reported by Exchange, not here, so a client
// can be constructed before its credentials are known.
func New(cfg *Config) *Client {
	if cfg == nil {
		cfg = &Config{}
	}

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Client{
		settings:   cfg.Settings,
		httpClient: httpClient,
		timeout:    timeout,
		logger:     logger,
		limiter:    limiter,
		inst:       cfg.Instrumentation,
	}
}

// ClientConfig merges the built-in defaults, the client's process-wide
// settings, and the given per-call overrides, in that priority order. The
// merge is pure and side-effect free; required fields are checked only when
// a dependent operation is attempted.
func (c *Client) ClientConfig(overrides Settings) ClientConfig {
	return resolveConfig(defaultConfig(), c.settings, overrides)
}

// AuthorizeURL builds the provider redirect URL from the client's merged
// configuration and the given extra parameters. See
// ClientConfig.AuthorizeCodeURL for the override rules.
func (c *Client) AuthorizeURL(extra url.Values) string {
	return c.ClientConfig(Settings{}).AuthorizeCodeURL(extra)
}

// ensureContextTimeout ensures the context has a deadline, adding the
// client's request timeout when it has none. The returned cancel function
// must be called.
func (c *Client) ensureContextTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

// waitRateLimit blocks until the client-side rate limiter admits another
// provider call, or the context is done. A nil limiter admits immediately.
func (c *Client) waitRateLimit(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return newError(KindTransport, "", "rate limiter: "+err.Error(), err)
	}
	return nil
}
