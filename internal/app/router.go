// Package app provides router configuration.
package app

import (
	"github.com/guttosm/invoice-service/config"
	"github.com/guttosm/invoice-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.InvoiceHandler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, store *StoreComponents, cfg config.ServerConfig) *RouterComponents {
	handler := http.NewInvoiceHandler(services.Invoices)

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("store", http.HealthCheckFunc(store.Repo.Ping))
	healthHandler.RegisterChecker("cache", http.HealthCheckFunc(services.Cache.Ping))
	healthHandler.RegisterCircuitBreaker(store.Backend, store.CircuitBreaker)

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.RateLimit,
		RateWindow:        cfg.RateWindow,
		RequestTimeout:    cfg.RequestTimeout,
		EnableIdempotency: cfg.EnableIdempotency,
		IdempotencyTTL:    cfg.IdempotencyTTL,
		CORSOrigins:       cfg.CORSOrigins,
		SwaggerUser:       cfg.SwaggerUser,
		SwaggerPass:       cfg.SwaggerPass,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
