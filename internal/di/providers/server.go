package providers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/mmynk/saladbowl/internal/auth"
	"github.com/mmynk/saladbowl/internal/config"
	"github.com/mmynk/saladbowl/internal/metrics"
	"github.com/mmynk/saladbowl/internal/server"
	"github.com/mmynk/saladbowl/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer builds the router and starts serving in the background.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	limiterHandle := do.MustInvoke[*RateLimiterHandle](i)

	services := server.Services{
		Auth:     do.MustInvoke[*service.AuthService](i),
		Roster:   do.MustInvoke[*service.RosterService](i),
		Recipe:   do.MustInvoke[*service.RecipeService](i),
		Shopping: do.MustInvoke[*service.ShoppingService](i),
		Settings: do.MustInvoke[*service.SettingsService](i),
		Billing:  do.MustInvoke[*service.BillingService](i),
	}

	handler := server.New(services, server.Options{
		JWT:            do.MustInvoke[*auth.JWTManager](i),
		AuthLimiter:    limiterHandle.KeyedRateLimiter,
		Metrics:        do.MustInvoke[*metrics.Metrics](i),
		Health:         storeHandle.SQLiteStore,
		StaticPath:     cfg.Server.StaticPath,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         log,
	})

	srv := server.NewHTTPServer(":"+cfg.Server.Port, handler,
		cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.IdleTimeout)

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr, "url", "http://localhost"+srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	return &HTTPServerHandle{Server: srv}, nil
}
