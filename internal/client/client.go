package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/config"
	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/resilience"
	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrUnavailable is returned while the circuit breaker rejects calls.
var ErrUnavailable = errors.New("shoplist api unavailable")

// errServerStatus marks a 5xx response for the breaker only; callers still
// receive the response.
var errServerStatus = errors.New("server error status")

// Options configures a Client.
type Options struct {
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	RetryMax       int
	RetryWaitMin   time.Duration
	RetryWaitMax   time.Duration
	RateLimitRPS   float64
	BreakerEnabled bool
}

// OptionsFromConfig maps the loaded configuration onto client options.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		BaseURL:        cfg.API.BaseURL,
		UserAgent:      cfg.API.UserAgent,
		Timeout:        cfg.API.Timeout,
		RetryMax:       cfg.Resilience.RetryMax,
		RetryWaitMin:   cfg.Resilience.RetryWaitMin,
		RetryWaitMax:   cfg.Resilience.RetryWaitMax,
		RateLimitRPS:   cfg.Resilience.RateLimitRPS,
		BreakerEnabled: cfg.Resilience.BreakerEnabled,
	}
}

// Client wraps resty with rate limiting and a circuit breaker.
type Client struct {
	Resty   *resty.Client
	Limiter *rate.Limiter
	Breaker *resilience.Breaker

	mu     sync.RWMutex
	logger *zap.Logger
}

// New creates a client that sends through rt. The auth-aware client passes
// an Authenticator here; the auth endpoint client passes the bare transport.
// Resty's own retry is disabled because rt already retries.
func New(name string, opts Options, rt http.RoundTripper, logger *zap.Logger, metrics *monitoring.Metrics) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("client", name))

	restyClient := resty.New()
	restyClient.
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", opts.UserAgent).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal).
		SetTransport(rt)

	c := &Client{
		Resty:   restyClient,
		Limiter: newLimiter(opts.RateLimitRPS),
		logger:  logger,
	}
	if opts.BreakerEnabled {
		c.Breaker = newBreaker(name, logger, metrics)
	}
	return c
}

func newBreaker(name string, logger *zap.Logger, metrics *monitoring.Metrics) *resilience.Breaker {
	return resilience.New(name, resilience.Settings{
		HalfOpenProbes: 3,
		Window:         60 * time.Second,
		Cooldown:       30 * time.Second,
		ShouldTrip: func(counts resilience.Counts) bool {
			// 10 straight failures, or >70% of at least 20 calls
			return counts.ConsecutiveFailures >= 10 ||
				(counts.Requests >= 20 && float64(counts.TotalFailures)/float64(counts.Requests) > 0.7)
		},
		IsFailure: func(err error) bool {
			return err != nil && !errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to resilience.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
			metrics.SetBreakerState(name, int(to))
		},
	})
}

func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(rps), max(1, int(rps)))
}

// Use registers resty request middlewares, run in order before each send.
func (c *Client) Use(middlewares ...resty.RequestMiddleware) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range middlewares {
		c.Resty.OnBeforeRequest(m)
	}
}

// SetHeader adds a default header.
func (c *Client) SetHeader(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Resty.SetHeader(key, value)
}

// SetRateLimit configures rate limiting in requests per second; 0 disables it.
func (c *Client) SetRateLimit(rps float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Limiter = newLimiter(rps)
}

// Request creates a request bound to ctx once the breaker and the rate
// limiter allow it.
func (c *Client) Request(ctx context.Context) (*resty.Request, error) {
	if c.Breaker != nil && c.Breaker.State() == resilience.StateOpen {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, resilience.ErrCircuitOpen)
	}

	c.mu.RLock()
	limiter := c.Limiter
	c.mu.RUnlock()
	if err := limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Resty.R().SetContext(ctx), nil
}

// Execute runs fn under the circuit breaker. Transport errors and 5xx
// responses count as failures; a 5xx response is still returned to the
// caller without an error.
func (c *Client) Execute(fn func() (*resty.Response, error)) (*resty.Response, error) {
	if c.Breaker == nil {
		return fn()
	}

	var resp *resty.Response
	err := c.Breaker.Do(func() error {
		var err error
		resp, err = fn()
		if err != nil {
			return err
		}
		if resp.StatusCode() >= http.StatusInternalServerError {
			return errServerStatus
		}
		return nil
	})

	switch {
	case err == nil, errors.Is(err, errServerStatus):
		return resp, nil
	case errors.Is(err, resilience.ErrCircuitOpen), errors.Is(err, resilience.ErrTooManyRequests):
		c.logger.Debug("call rejected by circuit breaker", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		return resp, err
	}
}

// BreakerState returns the breaker state, closed when no breaker is set.
func (c *Client) BreakerState() resilience.State {
	if c.Breaker == nil {
		return resilience.StateClosed
	}
	return c.Breaker.State()
}

// BreakerCounts returns the breaker's current window statistics.
func (c *Client) BreakerCounts() resilience.Counts {
	if c.Breaker == nil {
		return resilience.Counts{}
	}
	return c.Breaker.Counts()
}
