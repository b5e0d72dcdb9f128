package monitoring

import (
	"net/http"
	"time"
)

// RoundTripper records every outbound exchange that passes through it.
type RoundTripper struct {
	next    http.RoundTripper
	metrics *Metrics
}

// InstrumentRoundTripper wraps next so each request is counted and timed.
func InstrumentRoundTripper(metrics *Metrics, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	if metrics == nil {
		return next
	}
	return &RoundTripper{next: next, metrics: metrics}
}

// RoundTrip implements http.RoundTripper.
func (rt *RoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	path := req.URL.Path

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		rt.metrics.RecordRequestError(req.Method, path)
		return nil, err
	}

	rt.metrics.RecordRequest(req.Method, path, resp.StatusCode, time.Since(start))
	return resp, nil
}

// Timer measures a repository call
type Timer struct {
	start     time.Time
	metrics   *Metrics
	resource  string
	operation string
}

// NewTimer creates a new timer
func NewTimer(metrics *Metrics, resource, operation string) *Timer {
	return &Timer{
		start:     time.Now(),
		metrics:   metrics,
		resource:  resource,
		operation: operation,
	}
}

// Stop records the call with a result derived from err.
func (t *Timer) Stop(err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	t.metrics.RecordCall(t.resource, t.operation, result, time.Since(t.start))
}
