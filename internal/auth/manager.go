package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/monitoring"
	"go.uber.org/zap"
)

var errEmptyAccessToken = errors.New("refresh response carried no access token")

// Manager owns the session tokens and the single-flight refresh. Build one
// per session and share the pointer; it must not be copied.
type Manager struct {
	endpoint Endpoint
	tokens   *TokenStore
	logger   *zap.Logger
	metrics  *monitoring.Metrics

	mu         sync.Mutex
	refreshing bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. The default discards.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithMetrics records refresh outcomes.
func WithMetrics(metrics *monitoring.Metrics) Option {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

// NewManager creates a session manager that refreshes through endpoint and
// persists tokens in tokens.
func NewManager(endpoint Endpoint, tokens *TokenStore, opts ...Option) *Manager {
	m := &Manager{
		endpoint: endpoint,
		tokens:   tokens,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Refresh exchanges the stored refresh token for a new pair and persists it.
//
// At most one refresh runs at a time. A caller that finds one already running
// gets ErrRefreshInProgress at once; it neither waits for nor shares the
// running attempt's result. The lock only covers the flag check-and-set, never
// the network call.
func (m *Manager) Refresh(ctx context.Context) (TokenPair, error) {
	if !m.begin() {
		m.logger.Debug("refresh skipped, another refresh is running")
		m.metrics.RecordRefresh(monitoring.RefreshInProgress, 0)
		return TokenPair{}, ErrRefreshInProgress
	}
	defer m.end()

	refreshToken, ok, err := m.tokens.RefreshToken(ctx)
	if err != nil {
		m.metrics.RecordRefresh(monitoring.RefreshFailed, 0)
		return TokenPair{}, &RefreshError{Err: err}
	}
	if !ok {
		m.logger.Info("refresh impossible, no refresh token stored")
		m.metrics.RecordRefresh(monitoring.RefreshNoToken, 0)
		return TokenPair{}, ErrNoRefreshToken
	}

	start := time.Now()
	pair, err := m.exchange(ctx, refreshToken)
	elapsed := time.Since(start)
	if err != nil {
		m.logger.Warn("token refresh failed", zap.Error(err), zap.Duration("elapsed", elapsed))
		m.metrics.RecordRefresh(monitoring.RefreshFailed, elapsed)
		return TokenPair{}, &RefreshError{Err: err}
	}

	if err := m.tokens.Save(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		m.logger.Error("refreshed tokens could not be stored", zap.Error(err))
		m.metrics.RecordRefresh(monitoring.RefreshFailed, elapsed)
		return TokenPair{}, &RefreshError{Err: err}
	}

	m.logger.Info("token refreshed", zap.String("token_type", pair.TokenType), zap.Duration("elapsed", elapsed))
	m.metrics.RecordRefresh(monitoring.RefreshSuccess, elapsed)
	return pair, nil
}

// exchange calls the endpoint, turning a panic into an error so the caller
// always gets a result.
func (m *Manager) exchange(ctx context.Context, refreshToken string) (pair TokenPair, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("refresh endpoint panicked: %v", r)
		}
	}()

	pair, err = m.endpoint.Refresh(ctx, refreshToken)
	if err != nil {
		return TokenPair{}, err
	}
	if pair.AccessToken == "" {
		return TokenPair{}, errEmptyAccessToken
	}
	return pair, nil
}

// begin atomically claims the refresh slot.
func (m *Manager) begin() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.refreshing {
		return false
	}
	m.refreshing = true
	return true
}

func (m *Manager) end() {
	m.mu.Lock()
	m.refreshing = false
	m.mu.Unlock()
}

// Refreshing reports whether a refresh is running right now.
func (m *Manager) Refreshing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshing
}

// CurrentToken returns the stored access token. It never fails: a store
// error is logged and reported as no token.
func (m *Manager) CurrentToken(ctx context.Context) (string, bool) {
	token, ok, err := m.tokens.AccessToken(ctx)
	if err != nil {
		m.logger.Warn("access token unreadable", zap.Error(err))
		return "", false
	}
	return token, ok
}

// Save stores a pair obtained outside of Refresh, such as from login.
func (m *Manager) Save(ctx context.Context, pair TokenPair) error {
	return m.tokens.Save(ctx, pair.AccessToken, pair.RefreshToken)
}

// Clear drops both tokens, ending the session.
func (m *Manager) Clear(ctx context.Context) error {
	return m.tokens.Clear(ctx)
}
