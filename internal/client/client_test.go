package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/config"
	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/resilience"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions(baseURL string) Options {
	return Options{
		BaseURL:        baseURL,
		UserAgent:      "shoplist-test",
		Timeout:        5 * time.Second,
		RetryMax:       2,
		RetryWaitMin:   time.Millisecond,
		RetryWaitMax:   5 * time.Millisecond,
		BreakerEnabled: true,
	}
}

func newTestClient(t *testing.T, opts Options, metrics *monitoring.Metrics) *Client {
	t.Helper()
	return New("test", opts, NewTransport(opts, nil, metrics), nil, metrics)
}

func TestClientCircuitBreakerIntegration(t *testing.T) {
	t.Run("breaker starts closed", func(t *testing.T) {
		client := newTestClient(t, testOptions("http://example.invalid"), nil)

		require.NotNil(t, client.Breaker)
		assert.Equal(t, "test", client.Breaker.Name())
		assert.Equal(t, resilience.StateClosed, client.BreakerState())
		assert.Equal(t, uint32(0), client.BreakerCounts().Requests)
	})

	t.Run("execute records outcomes", func(t *testing.T) {
		client := newTestClient(t, testOptions("http://example.invalid"), nil)

		for i := 0; i < 5; i++ {
			_, err := client.Execute(func() (*resty.Response, error) {
				return &resty.Response{RawResponse: &http.Response{StatusCode: http.StatusOK}}, nil
			})
			require.NoError(t, err)
		}
		testErr := errors.New("connection refused")
		_, err := client.Execute(func() (*resty.Response, error) {
			return nil, testErr
		})
		assert.ErrorIs(t, err, testErr)

		counts := client.BreakerCounts()
		assert.Equal(t, uint32(5), counts.TotalSuccesses)
		assert.Equal(t, uint32(1), counts.TotalFailures)
	})

	t.Run("opens after consecutive failures and fails fast", func(t *testing.T) {
		client := newTestClient(t, testOptions("http://example.invalid"), nil)

		for i := 0; i < 10; i++ {
			_ = client.Breaker.Do(func() error { return errors.New("failure") })
		}
		assert.Equal(t, resilience.StateOpen, client.BreakerState())

		_, err := client.Request(context.Background())
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.ErrorIs(t, err, resilience.ErrCircuitOpen)

		called := false
		_, err = client.Execute(func() (*resty.Response, error) {
			called = true
			return nil, nil
		})
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.False(t, called)
	})

	t.Run("server errors count but are returned", func(t *testing.T) {
		client := newTestClient(t, testOptions("http://example.invalid"), nil)

		resp, err := client.Execute(func() (*resty.Response, error) {
			return &resty.Response{RawResponse: &http.Response{StatusCode: http.StatusBadGateway}}, nil
		})
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode())
		assert.Equal(t, uint32(1), client.BreakerCounts().TotalFailures)
	})

	t.Run("cancellation does not count", func(t *testing.T) {
		client := newTestClient(t, testOptions("http://example.invalid"), nil)

		_, err := client.Execute(func() (*resty.Response, error) {
			return nil, context.Canceled
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, uint32(0), client.BreakerCounts().TotalFailures)
	})

	t.Run("disabled breaker", func(t *testing.T) {
		opts := testOptions("http://example.invalid")
		opts.BreakerEnabled = false
		client := newTestClient(t, opts, nil)

		assert.Nil(t, client.Breaker)
		assert.Equal(t, resilience.StateClosed, client.BreakerState())
		_, err := client.Execute(func() (*resty.Response, error) { return nil, nil })
		assert.NoError(t, err)
	})
}

func TestClientRateLimiting(t *testing.T) {
	t.Run("limited client still issues requests", func(t *testing.T) {
		client := newTestClient(t, testOptions("http://example.invalid"), nil)
		client.SetRateLimit(10)

		req, err := client.Request(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, req)
	})

	t.Run("sub-one rps keeps a burst of one", func(t *testing.T) {
		limiter := newLimiter(0.5)
		assert.Equal(t, 1, limiter.Burst())
	})

	t.Run("context cancellation prevents request", func(t *testing.T) {
		client := newTestClient(t, testOptions("http://example.invalid"), nil)
		client.SetRateLimit(1)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		req, err := client.Request(ctx)
		assert.Error(t, err)
		assert.Nil(t, req)
	})
}

func TestClientSendsThroughRetryingTransport(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		assert.Equal(t, "shoplist-test", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"groceries"}`))
	}))
	defer srv.Close()

	metrics := monitoring.NewMetrics(nil)
	client := newTestClient(t, testOptions(srv.URL), metrics)

	req, err := client.Request(context.Background())
	require.NoError(t, err)

	var out struct {
		Name string `json:"name"`
	}
	resp, err := client.Execute(func() (*resty.Response, error) {
		return req.SetResult(&out).Get("/api/v1/shopping/lists/1")
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "groceries", out.Name)
	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, int64(2), metrics.Snapshot().Requests, "each attempt is instrumented")
}

func TestClientDoesNotRetryUnauthorized(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := newTestClient(t, testOptions(srv.URL), nil)
	req, err := client.Request(context.Background())
	require.NoError(t, err)

	resp, err := req.Get("/api/v1/shopping/lists")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	assert.Equal(t, int32(1), hits.Load())
}

func TestClientUseMiddleware(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.Header.Get("X-Trace")))
	}))
	defer srv.Close()

	client := newTestClient(t, testOptions(srv.URL), nil)
	client.Use(func(_ *resty.Client, r *resty.Request) error {
		r.SetHeader("X-Trace", "on")
		return nil
	})

	req, err := client.Request(context.Background())
	require.NoError(t, err)
	resp, err := req.Get("/")
	require.NoError(t, err)
	assert.Equal(t, "on", resp.String())
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Resilience.RateLimitRPS = 4

	opts := OptionsFromConfig(cfg)
	assert.Equal(t, cfg.API.BaseURL, opts.BaseURL)
	assert.Equal(t, cfg.API.Timeout, opts.Timeout)
	assert.Equal(t, 3, opts.RetryMax)
	assert.Equal(t, 4.0, opts.RateLimitRPS)
	assert.True(t, opts.BreakerEnabled)
}
