package providers

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/mmynk/saladbowl/internal/auth"
	"github.com/mmynk/saladbowl/internal/config"
	"github.com/mmynk/saladbowl/internal/ratelimit"
	"github.com/mmynk/saladbowl/internal/validation"
)

// ProvideJWTManager provides the session token issuer.
func ProvideJWTManager(i do.Injector) (*auth.JWTManager, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL), nil
}

// ProvideAuthenticator provides the email authenticator.
func ProvideAuthenticator(i do.Injector) (*auth.EmailAuthenticator, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	return auth.NewEmailAuthenticator(storeHandle.SQLiteStore), nil
}

// ProvideValidator provides the request validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// RateLimiterHandle wraps the AuthService limiter so its sweeper stops on
// shutdown.
type RateLimiterHandle struct {
	*ratelimit.KeyedRateLimiter
}

// Shutdown implements do.Shutdownable.
func (h *RateLimiterHandle) Shutdown() error {
	h.Stop()
	return nil
}

// ProvideAuthRateLimiter provides the per-client limiter for AuthService.
func ProvideAuthRateLimiter(i do.Injector) (*RateLimiterHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*slog.Logger](i)

	limiter := ratelimit.New(cfg.Auth.RateLimit, cfg.Auth.RateBurst)
	log.Debug("Auth rate limiter ready", "rps", cfg.Auth.RateLimit, "burst", cfg.Auth.RateBurst)

	return &RateLimiterHandle{KeyedRateLimiter: limiter}, nil
}
