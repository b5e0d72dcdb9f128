package preferences

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/GriffinCanCode/ShopList/client/internal/domain/model"
	"github.com/GriffinCanCode/ShopList/client/internal/shared/id"
	"github.com/GriffinCanCode/ShopList/client/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAuthData() model.AuthData {
	return model.AuthData{
		User: model.User{
			ID:          "7",
			Username:    "ana",
			Email:       "ana@example.com",
			FirstName:   "Ana",
			LastName:    "Lopez",
			PhoneNumber: "+34600000000",
		},
		AccessToken:  "a",
		RefreshToken: "r",
		TokenType:    "bearer",
	}
}

func TestAuthDataRoundTrip(t *testing.T) {
	ctx := context.Background()
	prefs := New(storage.NewMemory())

	got, err := prefs.AuthData(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	loggedIn, err := prefs.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.False(t, loggedIn)

	require.NoError(t, prefs.SaveAuthData(ctx, sampleAuthData()))

	got, err = prefs.AuthData(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sampleAuthData(), *got)

	loggedIn, err = prefs.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.True(t, loggedIn)

	require.NoError(t, prefs.ClearAuthData(ctx))
	loggedIn, err = prefs.IsLoggedIn(ctx)
	require.NoError(t, err)
	assert.False(t, loggedIn)
}

func TestAuthDataLayout(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, New(store).SaveAuthData(ctx, sampleAuthData()))

	raw, ok, err := store.Get(ctx, AuthDataKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{
		"user": {"id":"7","username":"ana","email":"ana@example.com","first_name":"Ana","last_name":"Lopez","phone_number":"+34600000000"},
		"token": {"access_token":"a","refresh_token":"r","token_type":"bearer"}
	}`, raw)
}

func TestAuthDataCorrupt(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, AuthDataKey, "{not json"))

	_, err := New(store).AuthData(ctx)
	assert.ErrorIs(t, err, ErrCorruptAuthData)
}

func TestDeviceID(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "settings.toml")

	store, err := storage.NewFile(path)
	require.NoError(t, err)
	first, err := New(store).DeviceID(ctx)
	require.NoError(t, err)
	assert.True(t, id.IsValidDeviceID(first))

	again, err := New(store).DeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	reopened, err := storage.NewFile(path)
	require.NoError(t, err)
	persisted, err := New(reopened).DeviceID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, persisted, "device id survives restarts")
}

func TestDeviceIDReplacesInvalid(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	require.NoError(t, store.Set(ctx, DeviceIDKey, "garbage"))

	got, err := New(store).DeviceID(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "garbage", got)
	assert.True(t, id.IsValidDeviceID(got))
}
