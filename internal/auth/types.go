package auth

import "context"

// TokenPair is the credential set issued by login and refresh. It is replaced
// wholesale, never edited in place.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// Endpoint exchanges a refresh token for a new pair. It performs exactly one
// network call and must honour ctx cancellation.
type Endpoint interface {
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

// EndpointFunc adapts a function to Endpoint.
type EndpointFunc func(ctx context.Context, refreshToken string) (TokenPair, error)

// Refresh calls f.
func (f EndpointFunc) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	return f(ctx, refreshToken)
}
