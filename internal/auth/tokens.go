package auth

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/ShopList/client/internal/storage"
)

// Storage keys for the current pair.
const (
	AccessTokenKey  = "access_token"
	RefreshTokenKey = "refresh_token"
)

// TokenStore persists the access and refresh tokens in a settings store.
type TokenStore struct {
	store storage.Store
}

// NewTokenStore wraps store.
func NewTokenStore(store storage.Store) *TokenStore {
	return &TokenStore{store: store}
}

// Save writes both tokens in one store write.
func (s *TokenStore) Save(ctx context.Context, accessToken, refreshToken string) error {
	err := s.store.SetMany(ctx, map[string]string{
		AccessTokenKey:  accessToken,
		RefreshTokenKey: refreshToken,
	})
	if err != nil {
		return fmt.Errorf("save tokens: %w", err)
	}
	return nil
}

// AccessToken returns the stored access token. Empty values count as absent.
func (s *TokenStore) AccessToken(ctx context.Context) (string, bool, error) {
	return s.get(ctx, AccessTokenKey)
}

// RefreshToken returns the stored refresh token. Empty values count as absent.
func (s *TokenStore) RefreshToken(ctx context.Context) (string, bool, error) {
	return s.get(ctx, RefreshTokenKey)
}

// Clear removes both tokens.
func (s *TokenStore) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, AccessTokenKey, RefreshTokenKey); err != nil {
		return fmt.Errorf("clear tokens: %w", err)
	}
	return nil
}

func (s *TokenStore) get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := s.store.Get(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || v == "" {
		return "", false, nil
	}
	return v, true, nil
}
