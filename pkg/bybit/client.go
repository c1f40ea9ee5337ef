package bybit

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"resty.dev/v3"

	httpClient "bybitrest/internal/http"
	"bybitrest/pkg/core"
)

const (
	ProductionURL = "https://api.bybit.com"
	TestnetURL    = "https://api-testnet.bybit.com"

	// APIVersion prefixes every endpoint path.
	APIVersion = "v5"
)

// Header names attached to every request.
const (
	HeaderSignType   = "X-BAPI-SIGN-TYPE"
	HeaderSign       = "X-BAPI-SIGN"
	HeaderAPIKey     = "X-BAPI-API-KEY"
	HeaderTimestamp  = "X-BAPI-TIMESTAMP"
	HeaderRecvWindow = "X-BAPI-RECV-WINDOW"
	HeaderContent    = "Content-Type"
)

// BaseURL returns the testnet URL when testnet is true and the production URL otherwise.
func BaseURL(testnet bool) string {
	if testnet {
		return TestnetURL
	}
	return ProductionURL
}

// Client signs and dispatches requests to the Bybit V5 REST API.
// Its configuration is fixed at construction and it is safe for concurrent use.
type Client struct {
	config *core.Config
	http   *httpClient.Client
	logger zerolog.Logger
	now    func() time.Time

	market   *MarketService
	account  *AccountService
	position *PositionService
	asset    *AssetService
}

// Option is a functional option for configuring the Client.
type Option func(*Options)

// Options holds construction-time settings for the Client.
type Options struct {
	Logger  zerolog.Logger
	Clock   func() time.Time
	BaseURL string
}

// WithLogger returns an option that sets the logger for the client.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithClock returns an option that replaces time.Now as the source of request timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Clock = now
	}
}

// WithBaseURL returns an option that points the client at a custom endpoint,
// such as a proxy, instead of the one selected by Config.Testnet.
func WithBaseURL(url string) Option {
	return func(o *Options) {
		o.BaseURL = url
	}
}

// New creates a Client from config. The config is copied, so later changes by
// the caller have no effect. Credentials are required.
func New(config *core.Config, opts ...Option) (*Client, error) {
	if config == nil {
		return nil, core.NewExchangeError(core.ErrorTypeConfiguration, core.ErrCodeInvalidConfig,
			"config is required")
	}

	cfg := config.Clone()
	if err := cfg.Validate(); err != nil {
		return nil, core.NewExchangeError(core.ErrorTypeConfiguration, core.ErrCodeInvalidConfig,
			"validate config").WithCause(err)
	}
	if cfg.Credentials == nil {
		return nil, core.NewExchangeError(core.ErrorTypeConfiguration, core.ErrCodeNoCredentials,
			"credentials are required").WithCause(core.ErrNoCredentials)
	}

	options := &Options{
		Logger: zerolog.Nop(),
		Clock:  time.Now,
	}
	for _, opt := range opts {
		opt(options)
	}

	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = BaseURL(cfg.Testnet)
	}

	hc, err := httpClient.NewClient(&httpClient.Config{
		BaseURL: baseURL,
		Timeout: cfg.Timeout,
	}, options.Logger)
	if err != nil {
		return nil, core.NewExchangeError(core.ErrorTypeConfiguration, core.ErrCodeInvalidConfig,
			"create http client").WithCause(err)
	}

	c := &Client{
		config: cfg,
		http:   hc,
		logger: options.Logger,
		now:    options.Clock,
	}
	c.market = &MarketService{c: c}
	c.account = &AccountService{c: c}
	c.position = &PositionService{c: c}
	c.asset = &AssetService{c: c}

	c.logger.Debug().
		Str("base_url", baseURL).
		Bool("testnet", cfg.Testnet).
		Stringer("credentials", *cfg.Credentials).
		Msg("bybit client created")

	return c, nil
}

// Testnet reports whether the client was built for the test network.
func (c *Client) Testnet() bool {
	return c.config.Testnet
}

// BaseURL returns the endpoint requests are sent to.
func (c *Client) BaseURL() string {
	return c.http.BaseURL()
}

// Close releases the underlying HTTP client. Calls made afterwards fail with core.ErrClientClosed.
func (c *Client) Close() error {
	return c.http.Close()
}

func (c *Client) Market() *MarketService     { return c.market }
func (c *Client) Account() *AccountService   { return c.account }
func (c *Client) Position() *PositionService { return c.position }
func (c *Client) Asset() *AssetService       { return c.asset }

// Get sends a signed read request with params in the query string.
func (c *Client) Get(ctx context.Context, path string, params core.Params) (*Response, error) {
	return c.Do(ctx, core.NewRequest(http.MethodGet, path).SetParams(params))
}

// Post sends a signed write request with params as a JSON object body.
func (c *Client) Post(ctx context.Context, path string, params core.Params) (*Response, error) {
	return c.Do(ctx, core.NewRequest(http.MethodPost, path).SetParams(params))
}

// Do signs req and sends it. The timestamp is captured once and used for both
// the signature and the X-BAPI-TIMESTAMP header. Only transport failures are
// returned as errors; HTTP error statuses come back as a Response.
func (c *Client) Do(ctx context.Context, req *core.Request) (*Response, error) {
	if req == nil {
		return nil, core.NewExchangeError(core.ErrorTypeBadRequest, core.ErrCodeInvalidRequest,
			"request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	ts := strconv.FormatInt(c.now().UnixMilli(), 10)
	creds := c.config.Credentials

	signature, err := Sign(creds.SecretKey, creds.APIKey, c.config.RecvWindow, req.Params, ts)
	if err != nil {
		return nil, fmt.Errorf("sign request: %w", err)
	}

	path := "/" + strings.TrimPrefix(req.Path, "/")
	opts := []httpClient.RequestOption{
		httpClient.WithHeaders(c.headers(signature, ts)),
	}

	var r *resty.Response
	if req.IsWrite() {
		body := req.Params
		if body == nil {
			body = core.Params{}
		}
		r, err = c.http.Post(ctx, path, body, opts...)
	} else {
		if len(req.Params) > 0 {
			opts = append(opts, httpClient.WithQueryParams(req.Params))
		}
		r, err = c.http.Get(ctx, path, opts...)
	}
	if err != nil {
		return nil, c.transportError(req, err)
	}

	return newResponse(r), nil
}

func (c *Client) headers(signature, timestamp string) map[string]string {
	return map[string]string{
		HeaderSignType:   SignType,
		HeaderSign:       signature,
		HeaderAPIKey:     c.config.Credentials.APIKey,
		HeaderTimestamp:  timestamp,
		HeaderRecvWindow: c.config.RecvWindow,
		HeaderContent:    "application/json",
	}
}

func (c *Client) transportError(req *core.Request, err error) error {
	if errors.Is(err, core.ErrClientClosed) {
		return core.NewExchangeError(core.ErrorTypeBadRequest, core.ErrCodeClientClosed,
			"client is closed").WithRequest(req.Method, req.Path).WithCause(err)
	}

	c.logger.Error().Err(err).
		Str("method", req.Method).
		Str("path", req.Path).
		Msg("http request failed")

	return core.NewExchangeError(core.ErrorTypeTransport, core.ErrCodeTransport,
		"http request").WithRequest(req.Method, req.Path).WithCause(err)
}
