package app

import (
	"errors"
	"fmt"

	"github.com/GriffinCanCode/ShopList/client/internal/api"
	"github.com/GriffinCanCode/ShopList/client/internal/auth"
	"github.com/GriffinCanCode/ShopList/client/internal/client"
	"github.com/GriffinCanCode/ShopList/client/internal/domain/usecase"
	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/config"
	"github.com/GriffinCanCode/ShopList/client/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/ShopList/client/internal/preferences"
	"github.com/GriffinCanCode/ShopList/client/internal/storage"
	"github.com/GriffinCanCode/ShopList/client/internal/transport"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// App is the assembled client.
type App struct {
	Config      *config.Config
	Logger      *zap.Logger
	Metrics     *monitoring.Metrics
	Store       storage.Store
	Preferences *preferences.Preferences
	Session     *auth.Manager
	API         *client.Client
	Users       *api.Users
	Lists       *api.ShoppingLists
	Auth        *usecase.Auth
	Shopping    *usecase.Shopping
}

type options struct {
	store      storage.Store
	registerer prometheus.Registerer
}

// Option customises New.
type Option func(*options)

// WithStore uses store instead of opening the configured backend. The App
// takes ownership and closes it.
func WithStore(store storage.Store) Option {
	return func(o *options) { o.store = store }
}

// WithRegisterer registers metrics with reg instead of a private registry.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// New wires the client from cfg.
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	store := o.store
	if store == nil {
		var err error
		store, err = storage.Open(cfg.Store)
		if err != nil {
			return nil, fmt.Errorf("open settings store: %w", err)
		}
	}

	metrics := monitoring.NewMetrics(o.registerer)
	prefs := preferences.New(store)
	clientOpts := client.OptionsFromConfig(cfg)
	excluded := cfg.Auth.ExcludedPaths

	base := client.NewTransport(clientOpts, logger, metrics)

	// The refresh endpoint sends on the bare transport so a 401 from it can
	// never start another refresh.
	authClient := client.New("auth", clientOpts, base, logger, metrics)
	authClient.Use(transport.RequestID(), transport.DeviceID(prefs, logger))
	refresh := api.NewRefreshEndpoint(authClient, metrics)

	session := auth.NewManager(refresh, auth.NewTokenStore(store),
		auth.WithLogger(logger.Named("session")),
		auth.WithMetrics(metrics),
	)

	authenticator := transport.NewAuthenticator(base, session, excluded, logger.Named("authenticator"), metrics)
	apiClient := client.New("api", clientOpts, authenticator, logger, metrics)
	apiClient.Use(
		transport.RequestID(),
		transport.DeviceID(prefs, logger),
		transport.BearerInjector(session, excluded),
	)

	users := api.NewUsers(apiClient, metrics)
	lists := api.NewShoppingLists(apiClient, metrics)

	logger.Debug("client assembled",
		zap.String("base_url", cfg.API.BaseURL),
		zap.String("store", cfg.Store.Backend),
		zap.Strings("excluded_paths", excluded))

	return &App{
		Config:      cfg,
		Logger:      logger,
		Metrics:     metrics,
		Store:       store,
		Preferences: prefs,
		Session:     session,
		API:         apiClient,
		Users:       users,
		Lists:       lists,
		Auth:        usecase.NewAuth(users, prefs, session, logger.Named("auth")),
		Shopping:    usecase.NewShopping(lists, logger.Named("shopping")),
	}, nil
}

// Close releases the settings store.
func (a *App) Close() error {
	return a.Store.Close()
}
