package transport

import (
	"context"
	"net/url"

	"github.com/GriffinCanCode/ShopList/client/internal/shared/id"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Headers stamped on outgoing requests.
const (
	HeaderRequestID = "X-Request-ID"
	HeaderDeviceID  = "X-Device-ID"
)

// TokenSource yields the current access token. *auth.Manager satisfies it.
type TokenSource interface {
	CurrentToken(ctx context.Context) (string, bool)
}

// DeviceIDSource yields the installation's device id.
type DeviceIDSource interface {
	DeviceID(ctx context.Context) (string, error)
}

// BearerInjector returns a resty request middleware that sets
// "Authorization: Bearer <token>" on requests outside excludedPaths that do
// not already carry an Authorization header. Without a stored token the
// request goes out bare and the Authenticator handles the 401.
func BearerInjector(tokens TokenSource, excludedPaths []string) resty.RequestMiddleware {
	excluded := make(map[string]struct{}, len(excludedPaths))
	for _, p := range excludedPaths {
		excluded[p] = struct{}{}
	}

	return func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get("Authorization") != "" {
			return nil
		}
		if _, skip := excluded[requestPath(r.URL)]; skip {
			return nil
		}
		if token, ok := tokens.CurrentToken(r.Context()); ok {
			r.SetHeader("Authorization", "Bearer "+token)
		}
		return nil
	}
}

// RequestID returns a middleware that tags each request with a fresh ULID
// based id unless the caller set one.
func RequestID() resty.RequestMiddleware {
	return func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(HeaderRequestID) == "" {
			r.SetHeader(HeaderRequestID, id.NewRequestID().String())
		}
		return nil
	}
}

// DeviceID returns a middleware that sends the device id. Lookup failures
// are logged and the header is omitted.
func DeviceID(source DeviceIDSource, logger *zap.Logger) resty.RequestMiddleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(_ *resty.Client, r *resty.Request) error {
		deviceID, err := source.DeviceID(r.Context())
		if err != nil {
			logger.Warn("device id unavailable", zap.Error(err))
			return nil
		}
		r.SetHeader(HeaderDeviceID, deviceID)
		return nil
	}
}

// requestPath extracts the path from a relative or absolute request URL.
func requestPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Path
}
