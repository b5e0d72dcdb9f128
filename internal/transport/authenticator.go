package transport

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/GriffinCanCode/ShopList/client/internal/auth"
	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/monitoring"
	"go.uber.org/zap"
)

// Refresher renews the session tokens. *auth.Manager satisfies it.
type Refresher interface {
	Refresh(ctx context.Context) (auth.TokenPair, error)
}

// Authenticator is an http.RoundTripper that answers a 401 with one token
// refresh and one retry of the request.
type Authenticator struct {
	next     http.RoundTripper
	sessions Refresher
	excluded map[string]struct{}
	logger   *zap.Logger
	metrics  *monitoring.Metrics
}

// NewAuthenticator wraps next. Requests whose URL path is exactly one of
// excludedPaths are never refreshed or retried; a nil slice means the
// request always goes through the refresh cycle on 401.
func NewAuthenticator(next http.RoundTripper, sessions Refresher, excludedPaths []string, logger *zap.Logger, metrics *monitoring.Metrics) *Authenticator {
	if next == nil {
		next = http.DefaultTransport
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	excluded := make(map[string]struct{}, len(excludedPaths))
	for _, p := range excludedPaths {
		excluded[p] = struct{}{}
	}
	return &Authenticator{
		next:     next,
		sessions: sessions,
		excluded: excluded,
		logger:   logger,
		metrics:  metrics,
	}
}

// Excluded reports whether path bypasses the refresh cycle.
func (a *Authenticator) Excluded(path string) bool {
	_, ok := a.excluded[path]
	return ok
}

// RoundTrip implements http.RoundTripper.
func (a *Authenticator) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := a.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || a.Excluded(req.URL.Path) {
		return resp, nil
	}

	log := a.logger.With(zap.String("method", req.Method), zap.String("path", req.URL.Path))

	pair, err := a.sessions.Refresh(req.Context())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrRefreshInProgress):
			log.Debug("401 while another refresh runs, returning original response")
		case errors.Is(err, auth.ErrNoRefreshToken):
			log.Info("401 without a refresh token, session is logged out")
		default:
			log.Warn("401 and refresh failed", zap.Error(err))
		}
		return resp, nil
	}

	retry, err := rewind(req)
	if err != nil {
		log.Warn("request body cannot be replayed, returning original response", zap.Error(err))
		return resp, nil
	}
	retry.Header.Set("Authorization", "Bearer "+pair.AccessToken)

	drain(resp)

	retried, err := a.next.RoundTrip(retry)
	if err != nil {
		return nil, err
	}
	a.metrics.RecordRetry(retried.StatusCode)
	log.Debug("request retried after refresh", zap.Int("status", retried.StatusCode))
	return retried, nil
}

// rewind clones req with a fresh copy of its body.
func rewind(req *http.Request) (*http.Request, error) {
	clone := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return clone, nil
	}
	if req.GetBody == nil {
		return nil, errors.New("request body has no GetBody")
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	clone.Body = body
	return clone, nil
}

// drain releases the connection held by a response that is being discarded.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
	_ = resp.Body.Close()
}
