package providers

import (
	"context"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/mmynk/saladbowl/internal/metrics"
	"github.com/mmynk/saladbowl/internal/reset"
)

// SchedulerHandle wraps the weekly reset scheduler with shutdown capability.
type SchedulerHandle struct {
	*reset.Scheduler
}

// Shutdown implements do.Shutdownable.
func (h *SchedulerHandle) Shutdown() error {
	h.Scheduler.Shutdown()
	return nil
}

// ProvideScheduler creates the reset scheduler and arms it, which performs
// any missed reset before the server starts taking requests.
func ProvideScheduler(i do.Injector) (*SchedulerHandle, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*slog.Logger](i)
	m := do.MustInvoke[*metrics.Metrics](i)

	scheduler := reset.New(storeHandle.SQLiteStore, log, reset.WithMetrics(m))
	if err := scheduler.Start(context.Background()); err != nil {
		return nil, err
	}

	log.Info("Reset scheduler started", "next_reset", scheduler.Next())

	return &SchedulerHandle{Scheduler: scheduler}, nil
}
