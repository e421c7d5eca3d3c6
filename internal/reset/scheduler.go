package reset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mmynk/saladbowl/internal/metrics"
	"github.com/mmynk/saladbowl/internal/models"
)

// ErrStopped is returned by Reschedule after Shutdown.
var ErrStopped = errors.New("reset scheduler stopped")

// Store is the part of the repository the scheduler reads and mutates.
type Store interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	DeleteAllParticipants(ctx context.Context) (int64, error)
	SetLastReset(ctx context.Context, at time.Time) error
}

// Timer is a pending callback. *time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) { s.now = now }
}

// WithTimerFunc replaces time.AfterFunc.
func WithTimerFunc(afterFunc func(time.Duration, func()) Timer) Option {
	return func(s *Scheduler) { s.afterFunc = afterFunc }
}

// WithMetrics records resets and the next trigger instant.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Scheduler) { s.metrics = m }
}

// Scheduler clears the participant roster once per configured week.
//
// It holds at most one pending timer. Arming first performs a single catch-up
// reset when the last reset is older than the most recent trigger (or never
// happened), then schedules the timer for the next trigger. Every firing
// resets the roster and re-arms from freshly loaded settings.
type Scheduler struct {
	store     Store
	logger    *slog.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
	afterFunc func(time.Duration, func()) Timer

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	timer    Timer
	gen      uint64
	settings models.Settings
	next     time.Time
	stopped  bool
}

// New creates a scheduler. Nothing is armed until Start.
func New(store Store, logger *slog.Logger, opts ...Option) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		store:  store,
		logger: logger,
		now:    time.Now,
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
		ctx:    ctx,
		cancel: cancel,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the persisted settings and arms the scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("failed to load reset settings: %w", err)
	}
	return s.Reschedule(ctx, *settings)
}

// Reschedule cancels the pending timer and arms again from settings. Call it
// whenever the schedule is edited.
func (s *Scheduler) Reschedule(ctx context.Context, settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrStopped
	}
	s.arm(ctx, settings, time.Time{})
	return nil
}

// Next returns the instant the pending timer fires; zero if nothing is armed.
func (s *Scheduler) Next() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

// Shutdown stops the pending timer. Callbacks that are already running see
// a cancelled context; later ones do nothing.
func (s *Scheduler) Shutdown() {
	s.cancel()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.next = time.Time{}
	s.logger.Info("Reset scheduler stopped")
}

// arm must be called with s.mu held. firedFor is the trigger that just fired,
// or zero; the reference instant never goes before it so an early wake-up
// cannot schedule the same trigger twice.
func (s *Scheduler) arm(ctx context.Context, settings models.Settings, firedFor time.Time) {
	s.settings = settings

	now := s.reference(firedFor)
	recent := MostRecentTrigger(settings.Schedule, now)
	if settings.LastReset == nil || settings.LastReset.Before(recent) {
		s.logger.Info("Missed roster reset, catching up",
			"last_reset", settings.LastReset,
			"scheduled", recent,
		)
		_ = s.reset(ctx, metrics.TriggerCatchUp, now)
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen

	now = s.reference(firedFor)
	next := NextTrigger(settings.Schedule, now)
	s.next = next
	s.timer = s.afterFunc(delayUntil(next, s.now()), func() {
		s.fire(gen, next)
	})
	s.metrics.SetNextReset(next)

	s.logger.Info("Next roster reset scheduled",
		"at", next,
		"in", next.Sub(now).Round(time.Second),
	)
}

func (s *Scheduler) fire(gen uint64, target time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || gen != s.gen {
		return
	}
	s.timer = nil

	_ = s.reset(s.ctx, metrics.TriggerScheduled, s.reference(target))

	settings := s.settings
	if fresh, err := s.store.GetSettings(s.ctx); err != nil {
		s.logger.Error("Failed to reload reset settings, keeping last known schedule", "error", err)
	} else {
		settings = *fresh
	}
	s.arm(s.ctx, settings, target)
}

// reset clears the roster and records the reset instant.
func (s *Scheduler) reset(ctx context.Context, trigger string, at time.Time) error {
	removed, err := s.store.DeleteAllParticipants(ctx)
	if err == nil {
		err = s.store.SetLastReset(ctx, at)
	}
	s.metrics.ResetPerformed(trigger, err)
	if err != nil {
		s.logger.Error("Roster reset failed", "trigger", trigger, "error", err)
		return err
	}

	s.settings.LastReset = &at
	s.logger.Info("Roster cleared", "trigger", trigger, "removed", removed, "at", at)
	return nil
}

func (s *Scheduler) reference(notBefore time.Time) time.Time {
	now := s.now()
	if now.Before(notBefore) {
		return notBefore
	}
	return now
}
