package api

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	resdto "dealswap/internal/handler/dto/response"
	"dealswap/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Config struct {
	BaseURL      string
	Timeout      time.Duration
	RetryCount   int
	RetryWait    time.Duration
	RetryMaxWait time.Duration
}

func (c Config) withDefaults() Config {
	if c.Timeout <= 0 {
		c.Timeout = 10 * time.Second
	}
	if c.RetryCount < 0 {
		c.RetryCount = 0
	}
	if c.RetryWait <= 0 {
		c.RetryWait = 200 * time.Millisecond
	}
	if c.RetryMaxWait < c.RetryWait {
		c.RetryMaxWait = 2 * time.Second
	}
	return c
}

// Client talks to the engine over HTTP. It is safe for concurrent use.
type Client struct {
	http   *resty.Client
	// once serves calls whose replay would be rejected after a lost success response.
	once   *resty.Client
	logger *zap.Logger

	mu    sync.RWMutex
	token string
}

func New(cfg Config, logger *zap.Logger) *Client {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		http:   newResty(cfg, logger),
		once:   newResty(Config{BaseURL: cfg.BaseURL, Timeout: cfg.Timeout}, logger),
		logger: logger,
	}
}

func newResty(cfg Config, logger *zap.Logger) *resty.Client {
	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetLogger(logger.Sugar())
	if cfg.RetryCount == 0 {
		return rc
	}

	rc.SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWait).
		SetRetryMaxWaitTime(cfg.RetryMaxWait).
		AddRetryCondition(shouldRetry).
		AddRetryHook(func(resp *resty.Response, err error) {
			var fields []zap.Field
			if resp != nil && resp.Request != nil {
				fields = append(fields, zap.Int("attempt", resp.Request.Attempt))
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			} else if resp != nil {
				fields = append(fields, zap.Int("status", resp.StatusCode()))
			}
			logger.Warn("retrying engine request", fields...)
		})
	return rc
}

// shouldRetry limits retries to transport failures and gateway-style statuses.
func shouldRetry(resp *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	switch resp.StatusCode() {
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

type call struct {
	method  string
	path    string
	body    any
	query   map[string]string
	public  bool
	noRetry bool // not idempotent on the server
}

func do[T any](ctx context.Context, c *Client, in call) (*T, error) {
	rc := c.http
	if in.noRetry {
		rc = c.once
	}
	req := rc.R().
		SetContext(ctx).
		SetResult(new(T)).
		SetError(&errorEnvelope{})

	if !in.public {
		token := c.Token()
		if token == "" {
			return nil, errs.ErrIdentityRequired
		}
		req.SetAuthToken(token)
	}
	if in.body != nil {
		req.SetBody(in.body)
	}
	if len(in.query) > 0 {
		req.SetQueryParams(in.query)
	}

	resp, err := req.Execute(in.method, in.path)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errs.Mark(errs.Wrap(err, in.method+" "+in.path), errs.ErrUnavailable)
	}
	if resp.IsError() {
		env, _ := resp.Error().(*errorEnvelope)
		apiErr := newAPIError(resp.StatusCode(), env)
		c.logger.Debug("engine returned error",
			zap.String("path", in.path), zap.Int("status", apiErr.Status), zap.String("code", apiErr.Code))
		return nil, apiErr
	}

	result, _ := resp.Result().(*T)
	return result, nil
}

func (c *Client) Signup(ctx context.Context, username, password string) (*resdto.AuthResponse, error) {
	res, err := do[resdto.AuthResponse](ctx, c, call{
		method:  http.MethodPost,
		path:    "/api/auth/signup",
		body:    map[string]string{"username": username, "password": password},
		public:  true,
		noRetry: true,
	})
	if err != nil {
		return nil, err
	}
	c.SetToken(res.AccessToken)
	return res, nil
}

// Login stores the returned token; each login opens a new session.
func (c *Client) Login(ctx context.Context, username, password string) (*resdto.AuthResponse, error) {
	res, err := do[resdto.AuthResponse](ctx, c, call{
		method: http.MethodPost,
		path:   "/api/auth/login",
		body:   map[string]string{"username": username, "password": password},
		public: true,
	})
	if err != nil {
		return nil, err
	}
	c.SetToken(res.AccessToken)
	return res, nil
}

func (c *Client) IssueDailyDeal(ctx context.Context) (*resdto.DailyDealResponse, error) {
	return do[resdto.DailyDealResponse](ctx, c, call{method: http.MethodPost, path: "/api/deals/daily"})
}

func (c *Client) FetchCandidateBatch(ctx context.Context, excludeClaimed bool, limit int) ([]resdto.DealResponse, error) {
	query := map[string]string{"exclude_claimed": strconv.FormatBool(excludeClaimed)}
	if limit > 0 {
		query["limit"] = strconv.Itoa(limit)
	}
	res, err := do[resdto.CandidatesResponse](ctx, c, call{method: http.MethodGet, path: "/api/deals/candidates", query: query})
	if err != nil {
		return nil, err
	}
	return res.Deals, nil
}

func (c *Client) Claim(ctx context.Context, itemID string) (*resdto.ClaimResponse, error) {
	return do[resdto.ClaimResponse](ctx, c, call{
		method: http.MethodPost,
		path:   "/api/items/" + itemID + "/claim",
	})
}

func (c *Client) ListOwnedItems(ctx context.Context) ([]resdto.OwnedItemResponse, error) {
	res, err := do[resdto.OwnedItemsResponse](ctx, c, call{method: http.MethodGet, path: "/api/items/mine"})
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}

func (c *Client) ProposeTrade(ctx context.Context, toUsername, itemFrom, itemTo string) (*resdto.TradeActionResponse, error) {
	return do[resdto.TradeActionResponse](ctx, c, call{
		method:  http.MethodPost,
		path:    "/api/trades",
		body:    map[string]string{"to_username": toUsername, "item_from": itemFrom, "item_to": itemTo},
		noRetry: true,
	})
}

func (c *Client) ConfirmTrade(ctx context.Context, tradeID uuid.UUID) (*resdto.TradeActionResponse, error) {
	return do[resdto.TradeActionResponse](ctx, c, call{
		method: http.MethodPost,
		path:   "/api/trades/" + tradeID.String() + "/confirm",
	})
}

func (c *Client) CancelTrade(ctx context.Context, tradeID uuid.UUID) (*resdto.TradeActionResponse, error) {
	return do[resdto.TradeActionResponse](ctx, c, call{
		method:  http.MethodPost,
		path:    "/api/trades/" + tradeID.String() + "/cancel",
		noRetry: true,
	})
}

func (c *Client) GetTradeDetails(ctx context.Context, tradeID uuid.UUID) (*resdto.TradeResponse, error) {
	return do[resdto.TradeResponse](ctx, c, call{method: http.MethodGet, path: "/api/trades/" + tradeID.String()})
}

// ListTrades returns one page; pass the previous NextCursor to continue.
func (c *Client) ListTrades(ctx context.Context, state, cursor string, limit int) (*resdto.TradeListResponse, error) {
	query := map[string]string{}
	if state != "" {
		query["state"] = state
	}
	if cursor != "" {
		query["cursor"] = cursor
	}
	if limit > 0 {
		query["limit"] = strconv.Itoa(limit)
	}
	return do[resdto.TradeListResponse](ctx, c, call{method: http.MethodGet, path: "/api/trades", query: query})
}

func (c *Client) TradeBudget(ctx context.Context) (*resdto.BudgetResponse, error) {
	return do[resdto.BudgetResponse](ctx, c, call{method: http.MethodGet, path: "/api/trades/budget"})
}
