package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Refresh outcomes recorded by the session manager.
const (
	RefreshSuccess    = "success"
	RefreshInProgress = "in_progress"
	RefreshNoToken    = "no_token"
	RefreshFailed     = "failed"
)

// Metrics holds the client's Prometheus collectors. A nil *Metrics is valid
// and records nothing, so components can be built without instrumentation.
type Metrics struct {
	// Outbound HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestErrors   *prometheus.CounterVec

	// Session metrics
	RefreshTotal    *prometheus.CounterVec
	RefreshDuration prometheus.Histogram
	RetriesTotal    *prometheus.CounterVec

	// Repository metrics
	CallsTotal   *prometheus.CounterVec
	CallDuration *prometheus.HistogramVec

	// Breaker metrics
	BreakerState *prometheus.GaugeVec

	snapshot Snapshot
	mu       sync.Mutex
}

// Snapshot holds running totals for human-readable diagnostics.
type Snapshot struct {
	Requests      int64
	Unauthorized  int64
	Refreshes     int64
	FailedRefresh int64
	Retries       int64
	TotalDuration time.Duration
}

// NewMetrics registers the client collectors with reg. Passing nil uses a
// private registry, which keeps repeated construction in tests safe.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shoplist_http_requests_total",
				Help: "Outbound HTTP requests by method, path and status",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shoplist_http_request_duration_seconds",
				Help:    "Outbound HTTP request duration in seconds",
				Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"method", "path"},
		),
		RequestErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shoplist_http_request_errors_total",
				Help: "Outbound HTTP requests that failed without a response",
			},
			[]string{"method", "path"},
		),
		RefreshTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shoplist_token_refresh_total",
				Help: "Token refresh attempts by outcome",
			},
			[]string{"outcome"},
		),
		RefreshDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "shoplist_token_refresh_duration_seconds",
				Help:    "Duration of refresh calls that reached the auth endpoint",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
			},
		),
		RetriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shoplist_auth_retries_total",
				Help: "Requests re-sent after a successful refresh, by retry status",
			},
			[]string{"status"},
		),
		CallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shoplist_api_calls_total",
				Help: "Repository calls by resource, operation and result",
			},
			[]string{"resource", "operation", "result"},
		),
		CallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "shoplist_api_call_duration_seconds",
				Help:    "Repository call duration in seconds",
				Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"resource", "operation"},
		),
		BreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "shoplist_breaker_state",
				Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
			},
			[]string{"name"},
		),
	}
}

// RecordRequest records one outbound request that produced a response.
func (m *Metrics) RecordRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.Requests++
	m.snapshot.TotalDuration += duration
	if status == 401 {
		m.snapshot.Unauthorized++
	}
	m.mu.Unlock()
}

// RecordRequestError records an outbound request that failed at transport level.
func (m *Metrics) RecordRequestError(method, path string) {
	if m == nil {
		return
	}
	m.RequestErrors.WithLabelValues(method, path).Inc()
}

// RecordRefresh records a refresh attempt outcome. duration is zero for
// attempts that never reached the network.
func (m *Metrics) RecordRefresh(outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.RefreshTotal.WithLabelValues(outcome).Inc()
	if duration > 0 {
		m.RefreshDuration.Observe(duration.Seconds())
	}

	m.mu.Lock()
	switch outcome {
	case RefreshSuccess:
		m.snapshot.Refreshes++
	case RefreshFailed, RefreshNoToken:
		m.snapshot.FailedRefresh++
	}
	m.mu.Unlock()
}

// RecordRetry records a request re-sent after a refresh.
func (m *Metrics) RecordRetry(status int) {
	if m == nil {
		return
	}
	m.RetriesTotal.WithLabelValues(strconv.Itoa(status)).Inc()

	m.mu.Lock()
	m.snapshot.Retries++
	m.mu.Unlock()
}

// RecordCall records a repository call.
func (m *Metrics) RecordCall(resource, operation, result string, duration time.Duration) {
	if m == nil {
		return
	}
	m.CallsTotal.WithLabelValues(resource, operation, result).Inc()
	m.CallDuration.WithLabelValues(resource, operation).Observe(duration.Seconds())
}

// SetBreakerState publishes a breaker state as a gauge value.
func (m *Metrics) SetBreakerState(name string, state int) {
	if m == nil {
		return
	}
	m.BreakerState.WithLabelValues(name).Set(float64(state))
}

// Snapshot returns a copy of the running totals.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot
}
