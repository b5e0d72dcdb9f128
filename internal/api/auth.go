package api

import (
	"context"
	"errors"

	"github.com/GriffinCanCode/ShopList/client/internal/auth"
	"github.com/GriffinCanCode/ShopList/client/internal/client"
	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/config"
	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/monitoring"
	"github.com/go-resty/resty/v2"
)

var _ auth.Endpoint = (*RefreshEndpoint)(nil)

// RefreshEndpoint exchanges refresh tokens with the API. Its client must not
// carry an Authenticator, or a 401 here would recurse into another refresh.
type RefreshEndpoint struct {
	caller
}

// NewRefreshEndpoint creates the refresh endpoint on a plain client.
func NewRefreshEndpoint(c *client.Client, metrics *monitoring.Metrics) *RefreshEndpoint {
	return &RefreshEndpoint{caller{client: c, metrics: metrics, resource: "auth"}}
}

// Refresh posts the refresh token and returns the new pair.
func (e *RefreshEndpoint) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	resp, err := e.do(ctx, "refresh", func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(refreshRequest{RefreshToken: refreshToken}).Post(config.RefreshPath)
	})
	if err != nil {
		return auth.TokenPair{}, err
	}

	var token tokenDTO
	if err := decode(resp, &token); err != nil {
		return auth.TokenPair{}, err
	}
	if token.AccessToken == "" {
		return auth.TokenPair{}, errors.New("refresh response missing access_token")
	}
	return token.toPair(), nil
}
