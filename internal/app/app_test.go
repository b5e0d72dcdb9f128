package app

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/GriffinCanCode/ShopList/client/internal/domain/model"
	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/config"
	"github.com/GriffinCanCode/ShopList/client/internal/storage"
	"github.com/GriffinCanCode/ShopList/client/internal/testutil/apistub"
	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *config.Config {
	cfg := config.Default()
	cfg.API.BaseURL = baseURL
	cfg.Resilience.RetryMax = 0
	cfg.Store.Backend = config.StoreMemory
	return cfg
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)

	cfg := config.Default()
	cfg.Store.Backend = "floppy"
	_, err = New(cfg, nil)
	assert.Error(t, err)
}

func TestEndToEndSession(t *testing.T) {
	stub := apistub.New(t)
	stub.AddUser(model.User{Username: "ana", Email: "ana@example.com", FirstName: "Ana"}, "s3cret-pass")
	ctx := context.Background()

	reg := prometheus.NewRegistry()
	a, err := New(testConfig(stub.URL), nil, WithRegisterer(reg))
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Auth.Login(ctx, "ana@example.com", "s3cret-pass")
	require.NoError(t, err)

	state, err := a.Auth.CheckAuthState(ctx)
	require.NoError(t, err)
	assert.True(t, state.Authenticated)

	created := a.Shopping.CreateShoppingList(ctx, "Groceries", "")
	require.True(t, created.OK(), created.Message)

	stub.ExpireAccessTokens()
	updated, err := a.Shopping.AddItemToList(ctx, created.List.ID, model.AddItemRequest{Name: "Milk"})
	require.NoError(t, err)
	assert.Len(t, updated.Items, 1)
	assert.Equal(t, 1, stub.Refreshes())

	snap := a.Metrics.Snapshot()
	assert.Equal(t, int64(1), snap.Refreshes)
	assert.Equal(t, int64(1), snap.Retries)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)

	res := a.Auth.Logout(ctx)
	assert.True(t, res.Success)
	_, ok := a.Session.CurrentToken(ctx)
	assert.False(t, ok)
}

func TestSessionSurvivesRestartWithFileStore(t *testing.T) {
	stub := apistub.New(t)
	stub.AddUser(model.User{Username: "ana", Email: "ana@example.com"}, "s3cret-pass")
	ctx := context.Background()

	cfg := testConfig(stub.URL)
	cfg.Store.Backend = config.StoreFile
	cfg.Store.Path = filepath.Join(t.TempDir(), "settings.toml")

	first, err := New(cfg, nil)
	require.NoError(t, err)
	_, err = first.Auth.Login(ctx, "ana@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(cfg, nil)
	require.NoError(t, err)
	defer second.Close()

	state, err := second.Auth.CheckAuthState(ctx)
	require.NoError(t, err)
	assert.True(t, state.Authenticated)

	lists, err := second.Shopping.GetShoppingLists(ctx)
	require.NoError(t, err)
	assert.Empty(t, lists)
}

func TestWithRedisStore(t *testing.T) {
	stub := apistub.New(t)
	stub.AddUser(model.User{Username: "ana", Email: "ana@example.com"}, "s3cret-pass")
	mr := miniredis.RunT(t)
	ctx := context.Background()

	cfg := testConfig(stub.URL)
	cfg.Store.Backend = config.StoreRedis
	cfg.Store.RedisAddr = mr.Addr()

	a, err := New(cfg, nil)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.Auth.Login(ctx, "ana@example.com", "s3cret-pass")
	require.NoError(t, err)

	assert.True(t, mr.Exists(cfg.Store.RedisPrefix+"access_token"))
	assert.True(t, mr.Exists(cfg.Store.RedisPrefix+"auth_data"))
}

func TestWithStoreOption(t *testing.T) {
	store := storage.NewMemory()
	cfg := testConfig("http://example.invalid")
	cfg.Store.Backend = config.StoreFile
	cfg.Store.Path = ""

	a, err := New(cfg, nil, WithStore(store))
	require.NoError(t, err)
	assert.Same(t, store, a.Store.(*storage.Memory))
	require.NoError(t, a.Close())
}
