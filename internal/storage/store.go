package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// ErrClosed is returned by stores used after Close.
var ErrClosed = errors.New("store is closed")

// Store is a string key-value store. Implementations are safe for concurrent
// use and make each single-key Get/Set/Delete atomic.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// SetMany stores all pairs in one write.
	SetMany(ctx context.Context, values map[string]string) error
	// Delete removes keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error
	// Has reports whether key is present.
	Has(ctx context.Context, key string) (bool, error)
	// Close releases the backend.
	Close() error
}

// Open builds the store selected by cfg.
func Open(cfg config.StoreConfig) (Store, error) {
	switch cfg.Backend {
	case config.StoreMemory:
		return NewMemory(), nil
	case config.StoreFile, "":
		return NewFile(cfg.Path)
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return NewRedis(client, cfg.RedisPrefix), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
