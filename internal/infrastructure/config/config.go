package config

import (
	"fmt"
	"time"

	"github.com/GriffinCanCode/ShopList/client/internal/shared/paths"
	"github.com/kelseyhightower/envconfig"
)

// Store backends understood by storage.Open.
const (
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// Paths that never trigger a refresh-and-retry cycle unless overridden.
const (
	LoginPath   = "/api/v1/auth/login"
	RefreshPath = "/api/v1/auth/refresh"
)

// Config holds all client configuration.
type Config struct {
	API        APIConfig
	Auth       AuthConfig
	Resilience ResilienceConfig
	Store      StoreConfig
	Logging    LogConfig
}

// APIConfig describes the remote shopping-list service.
type APIConfig struct {
	BaseURL   string        `envconfig:"SHOPLIST_API_URL" default:"https://platform-production-c248.up.railway.app"`
	Timeout   time.Duration `envconfig:"SHOPLIST_API_TIMEOUT" default:"30s"`
	UserAgent string        `envconfig:"SHOPLIST_USER_AGENT" default:"ShopList-CLI/1.0"`
}

// AuthConfig holds session settings.
type AuthConfig struct {
	ExcludedPaths []string `envconfig:"SHOPLIST_AUTH_EXCLUDED_PATHS" default:"/api/v1/auth/login,/api/v1/auth/refresh"`
}

// ResilienceConfig holds retry, rate limit and breaker settings.
type ResilienceConfig struct {
	RetryMax       int           `envconfig:"SHOPLIST_RETRY_MAX" default:"3"`
	RetryWaitMin   time.Duration `envconfig:"SHOPLIST_RETRY_WAIT_MIN" default:"1s"`
	RetryWaitMax   time.Duration `envconfig:"SHOPLIST_RETRY_WAIT_MAX" default:"30s"`
	RateLimitRPS   float64       `envconfig:"SHOPLIST_RATE_LIMIT_RPS" default:"0"`
	BreakerEnabled bool          `envconfig:"SHOPLIST_BREAKER_ENABLED" default:"true"`
}

// StoreConfig selects where tokens and preferences are persisted.
type StoreConfig struct {
	Backend     string `envconfig:"SHOPLIST_STORE" default:"file"`
	Path        string `envconfig:"SHOPLIST_STORE_PATH"`
	RedisAddr   string `envconfig:"SHOPLIST_REDIS_ADDR" default:"localhost:6379"`
	RedisPrefix string `envconfig:"SHOPLIST_REDIS_PREFIX" default:"shoplist:"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Store.Path = resolveStorePath(cfg.Store.Path)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   "https://platform-production-c248.up.railway.app",
			Timeout:   30 * time.Second,
			UserAgent: "ShopList-CLI/1.0",
		},
		Auth: AuthConfig{
			ExcludedPaths: DefaultExcludedPaths(),
		},
		Resilience: ResilienceConfig{
			RetryMax:       3,
			RetryWaitMin:   time.Second,
			RetryWaitMax:   30 * time.Second,
			BreakerEnabled: true,
		},
		Store: StoreConfig{
			Backend:     StoreFile,
			Path:        resolveStorePath(""),
			RedisAddr:   "localhost:6379",
			RedisPrefix: "shoplist:",
		},
		Logging: LogConfig{
			Level: "info",
		},
	}
}

// DefaultExcludedPaths returns a fresh copy of the login and refresh paths.
func DefaultExcludedPaths() []string {
	return []string{LoginPath, RefreshPath}
}

// Validate rejects combinations the client cannot run with.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("SHOPLIST_API_URL must not be empty")
	}
	switch c.Store.Backend {
	case StoreFile, StoreRedis, StoreMemory:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.Store.Backend == StoreFile && c.Store.Path != "" {
		if err := paths.ValidateSettingsPath(c.Store.Path); err != nil {
			return err
		}
	}
	if c.Resilience.RetryMax < 0 {
		return fmt.Errorf("SHOPLIST_RETRY_MAX must be >= 0, got %d", c.Resilience.RetryMax)
	}
	return nil
}

func resolveStorePath(path string) string {
	return paths.Resolve(path)
}
