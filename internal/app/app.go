// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/invoice-service/config"
	"github.com/guttosm/invoice-service/internal/http"
	"github.com/rs/zerolog/log"
)

const defaultShutdownTimeout = 10 * time.Second

// App holds the wired application and everything that must be released on exit.
type App struct {
	Router   *http.Router
	Store    *StoreComponents
	Services *ServiceComponents
	cfg      config.Config
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(ctx context.Context, cfg config.Config) (*App, error) {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	store, err := InitializeStore(ctx, cfg.Store, cfg.CircuitBreaker)
	if err != nil {
		return nil, err
	}

	services, err := InitializeServices(ctx, cfg.Cache, store.Repo)
	if err != nil {
		_ = store.Close(ctx)
		return nil, err
	}

	routerComponents := InitializeRouter(services, store, cfg.Server)

	return &App{
		Router:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		Store:    store,
		Services: services,
		cfg:      cfg,
	}, nil
}

// Run serves HTTP until ctx is cancelled and then releases every resource.
func (a *App) Run(ctx context.Context) error {
	server := NewServer(a.Router, a.cfg.Server.Port, a.cfg.Server.ShutdownTimeout)
	runErr := server.Run(ctx)

	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	closeCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return errors.Join(runErr, a.Close(closeCtx))
}

// Close stops the router, the cache and the store.
func (a *App) Close(ctx context.Context) error {
	if a.Router != nil {
		a.Router.Close()
	}

	var errs []error
	if a.Services != nil && a.Services.Cache != nil {
		if err := a.Services.Cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close cache: %w", err))
		}
	}
	if err := a.Store.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("close store: %w", err))
	}

	if len(errs) == 0 {
		log.Info().Msg("Resources released")
	}
	return errors.Join(errs...)
}
