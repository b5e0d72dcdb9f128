package client

import (
	"net/http"

	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/monitoring"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// NewTransport builds the base RoundTripper shared by every API client:
// retryablehttp retries connection errors and 5xx responses, and each
// attempt underneath is instrumented. A 401 is never retried here.
func NewTransport(opts Options, logger *zap.Logger, metrics *monitoring.Metrics) http.RoundTripper {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = opts.RetryMax
	retryClient.RetryWaitMin = opts.RetryWaitMin
	retryClient.RetryWaitMax = opts.RetryWaitMax
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = newRetryLogger(logger)
	retryClient.HTTPClient.Transport = monitoring.InstrumentRoundTripper(metrics, retryClient.HTTPClient.Transport)

	return &retryablehttp.RoundTripper{Client: retryClient}
}

// retryLogger adapts zap to retryablehttp.LeveledLogger.
type retryLogger struct {
	sugar *zap.SugaredLogger
}

func newRetryLogger(logger *zap.Logger) retryablehttp.LeveledLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &retryLogger{sugar: logger.Named("retry").Sugar()}
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, keysAndValues...)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, keysAndValues...)
}

// Debug covers retryablehttp's per-attempt chatter.
func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, keysAndValues...)
}
