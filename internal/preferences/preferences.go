package preferences

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/GriffinCanCode/ShopList/client/internal/domain/model"
	"github.com/GriffinCanCode/ShopList/client/internal/shared/id"
	"github.com/GriffinCanCode/ShopList/client/internal/storage"
	"github.com/bytedance/sonic"
)

// Keys owned by this package.
const (
	AuthDataKey = "auth_data"
	DeviceIDKey = "device_id"
)

// ErrCorruptAuthData means the stored auth blob could not be decoded.
var ErrCorruptAuthData = errors.New("stored auth data is corrupt")

// authBlob is the persisted layout: the login response as received.
type authBlob struct {
	User  model.User `json:"user"`
	Token struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		TokenType    string `json:"token_type"`
	} `json:"token"`
}

// Preferences stores the signed-in user and the device id.
type Preferences struct {
	store storage.Store

	deviceMu sync.Mutex
	deviceID string
}

// New creates preferences backed by store.
func New(store storage.Store) *Preferences {
	return &Preferences{store: store}
}

// SaveAuthData persists data as one JSON blob.
func (p *Preferences) SaveAuthData(ctx context.Context, data model.AuthData) error {
	var blob authBlob
	blob.User = data.User
	blob.Token.AccessToken = data.AccessToken
	blob.Token.RefreshToken = data.RefreshToken
	blob.Token.TokenType = data.TokenType

	raw, err := sonic.MarshalString(blob)
	if err != nil {
		return fmt.Errorf("encode auth data: %w", err)
	}
	if err := p.store.Set(ctx, AuthDataKey, raw); err != nil {
		return fmt.Errorf("save auth data: %w", err)
	}
	return nil
}

// AuthData returns the stored auth data, or nil when nobody is signed in.
func (p *Preferences) AuthData(ctx context.Context) (*model.AuthData, error) {
	raw, ok, err := p.store.Get(ctx, AuthDataKey)
	if err != nil {
		return nil, fmt.Errorf("read auth data: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var blob authBlob
	if err := sonic.UnmarshalString(raw, &blob); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptAuthData, err)
	}
	return &model.AuthData{
		User:         blob.User,
		AccessToken:  blob.Token.AccessToken,
		RefreshToken: blob.Token.RefreshToken,
		TokenType:    blob.Token.TokenType,
	}, nil
}

// ClearAuthData removes the stored auth data.
func (p *Preferences) ClearAuthData(ctx context.Context) error {
	if err := p.store.Delete(ctx, AuthDataKey); err != nil {
		return fmt.Errorf("clear auth data: %w", err)
	}
	return nil
}

// IsLoggedIn reports whether auth data is stored.
func (p *Preferences) IsLoggedIn(ctx context.Context) (bool, error) {
	return p.store.Has(ctx, AuthDataKey)
}

// DeviceID returns the installation id, creating and persisting a UUID the
// first time it is asked for.
func (p *Preferences) DeviceID(ctx context.Context) (string, error) {
	p.deviceMu.Lock()
	defer p.deviceMu.Unlock()

	if p.deviceID != "" {
		return p.deviceID, nil
	}

	stored, ok, err := p.store.Get(ctx, DeviceIDKey)
	if err != nil {
		return "", fmt.Errorf("read device id: %w", err)
	}
	if ok && id.IsValidDeviceID(stored) {
		p.deviceID = stored
		return stored, nil
	}

	fresh := id.NewDeviceID().String()
	if err := p.store.Set(ctx, DeviceIDKey, fresh); err != nil {
		return "", fmt.Errorf("save device id: %w", err)
	}
	p.deviceID = fresh
	return fresh, nil
}
