// Package providers contains dependency injection providers for the saladbowl server.
package providers

import (
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/mmynk/saladbowl/internal/config"
	"github.com/mmynk/saladbowl/internal/metrics"
	"github.com/mmynk/saladbowl/pkg/logging"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.LoadConfig()
}

// ProvideLogger provides the structured logger and installs it as the
// slog default.
func ProvideLogger(i do.Injector) (*slog.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logging.New(logging.Options{
		Level: cfg.Logger.Level,
		JSON:  cfg.IsProduction(),
	})
	slog.SetDefault(log)

	log.Info("Starting saladbowl server",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"db_path", cfg.Store.Path,
		"static_path", cfg.Server.StaticPath,
	)

	return log, nil
}

// ProvideMetrics provides the Prometheus collectors.
func ProvideMetrics(i do.Injector) (*metrics.Metrics, error) {
	return metrics.New(), nil
}
