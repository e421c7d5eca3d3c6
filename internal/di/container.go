// Package di provides dependency injection configuration for the saladbowl server.
package di

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/mmynk/saladbowl/internal/auth"
	"github.com/mmynk/saladbowl/internal/config"
	"github.com/mmynk/saladbowl/internal/di/providers"
	"github.com/mmynk/saladbowl/internal/metrics"
	"github.com/mmynk/saladbowl/internal/service"
	"github.com/mmynk/saladbowl/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideMetrics)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Auth layer
	do.Provide(injector, providers.ProvideJWTManager)
	do.Provide(injector, providers.ProvideAuthenticator)
	do.Provide(injector, providers.ProvideValidator)
	do.Provide(injector, providers.ProvideAuthRateLimiter)

	// Workers
	do.Provide(injector, providers.ProvideScheduler)

	// Business services
	do.Provide(injector, providers.ProvideAuthService)
	do.Provide(injector, providers.ProvideRosterService)
	do.Provide(injector, providers.ProvideRecipeService)
	do.Provide(injector, providers.ProvideShoppingService)
	do.Provide(injector, providers.ProvideSettingsService)
	do.Provide(injector, providers.ProvideBillingService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services. The scheduler is armed before the HTTP
// server starts so a missed reset is applied before the first request.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*slog.Logger](injector)
	_ = do.MustInvoke[*metrics.Metrics](injector)

	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*auth.JWTManager](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*providers.RateLimiterHandle](injector)

	if _, err := do.Invoke[*providers.SchedulerHandle](injector); err != nil {
		return err
	}

	_ = do.MustInvoke[*service.AuthService](injector)
	_ = do.MustInvoke[*service.RosterService](injector)
	_ = do.MustInvoke[*service.RecipeService](injector)
	_ = do.MustInvoke[*service.ShoppingService](injector)
	_ = do.MustInvoke[*service.SettingsService](injector)
	_ = do.MustInvoke[*service.BillingService](injector)

	_ = do.MustInvoke[*providers.HTTPServerHandle](injector)

	return nil
}
