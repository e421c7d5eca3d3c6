package reset

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/saladbowl/internal/models"
)

type memStore struct {
	mu        sync.Mutex
	settings  models.Settings
	roster    int
	resets    []time.Time
	deletes   int
	deleteErr error
}

func (m *memStore) GetSettings(ctx context.Context) (*models.Settings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.settings
	return &s, nil
}

func (m *memStore) DeleteAllParticipants(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deletes++
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	n := m.roster
	m.roster = 0
	return int64(n), nil
}

func (m *memStore) SetLastReset(ctx context.Context, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resets = append(m.resets, at)
	m.settings.LastReset = &at
	return nil
}

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

type harness struct {
	now    time.Time
	timers []*fakeTimer
	store  *memStore
	sched  *Scheduler
}

func newHarness(t *testing.T, now time.Time, lastReset *time.Time) *harness {
	t.Helper()
	h := &harness{
		now: now,
		store: &memStore{
			settings: models.Settings{Schedule: fridayNight, LastReset: lastReset},
			roster:   3,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h.sched = New(h.store, logger,
		WithClock(func() time.Time { return h.now }),
		WithTimerFunc(func(d time.Duration, f func()) Timer {
			ft := &fakeTimer{delay: d, fn: f}
			h.timers = append(h.timers, ft)
			return ft
		}),
	)
	t.Cleanup(h.sched.Shutdown)
	return h
}

func (h *harness) last() *fakeTimer {
	return h.timers[len(h.timers)-1]
}

func ptr(t time.Time) *time.Time { return &t }

func TestStart_NeverReset_CatchesUpOnce(t *testing.T) {
	now := at(2026, time.October, 18, 10, 0, 0)
	h := newHarness(t, now, nil)

	require.NoError(t, h.sched.Start(context.Background()))

	assert.Equal(t, 1, h.store.deletes)
	assert.Equal(t, []time.Time{now}, h.store.resets)
	assert.Equal(t, 0, h.store.roster)
	require.Len(t, h.timers, 1)
	assert.Equal(t, at(2026, time.October, 23, 23, 59, 0), h.sched.Next())
	assert.Equal(t, at(2026, time.October, 23, 23, 59, 0).Sub(now), h.last().delay)
}

func TestStart_ManyMissedTriggers_CatchesUpOnce(t *testing.T) {
	now := at(2026, time.October, 18, 10, 0, 0)
	h := newHarness(t, now, ptr(at(2026, time.August, 1, 12, 0, 0)))

	require.NoError(t, h.sched.Start(context.Background()))

	assert.Equal(t, 1, h.store.deletes)
	assert.Len(t, h.store.resets, 1)
}

func TestStart_UpToDate_NoReset(t *testing.T) {
	now := at(2026, time.October, 18, 10, 0, 0)
	h := newHarness(t, now, ptr(at(2026, time.October, 16, 23, 59, 0)))

	require.NoError(t, h.sched.Start(context.Background()))

	assert.Zero(t, h.store.deletes)
	assert.Equal(t, 3, h.store.roster)
	require.Len(t, h.timers, 1)
}

func TestFire_ResetsAndRearmsForNextWeek(t *testing.T) {
	h := newHarness(t, at(2026, time.October, 18, 10, 0, 0), ptr(at(2026, time.October, 16, 23, 59, 0)))
	require.NoError(t, h.sched.Start(context.Background()))

	target := at(2026, time.October, 23, 23, 59, 0)
	h.now = target
	h.store.roster = 5
	h.last().fn()

	assert.Equal(t, 1, h.store.deletes)
	assert.Equal(t, []time.Time{target}, h.store.resets)
	assert.Equal(t, 0, h.store.roster)
	require.Len(t, h.timers, 2)
	assert.Equal(t, 7*24*time.Hour, h.last().delay)
	assert.Equal(t, at(2026, time.October, 30, 23, 59, 0), h.sched.Next())
}

func TestFire_EarlyWakeDoesNotFireTwice(t *testing.T) {
	h := newHarness(t, at(2026, time.October, 18, 10, 0, 0), ptr(at(2026, time.October, 16, 23, 59, 0)))
	require.NoError(t, h.sched.Start(context.Background()))

	target := at(2026, time.October, 23, 23, 59, 0)
	h.now = target.Add(-2 * time.Second)
	h.last().fn()

	assert.Equal(t, 1, h.store.deletes)
	assert.Equal(t, []time.Time{target}, h.store.resets)
	assert.Equal(t, at(2026, time.October, 30, 23, 59, 0), h.sched.Next())
	assert.Equal(t, 7*24*time.Hour+2*time.Second, h.last().delay)
}

func TestFire_LateWakeRecordsActualTime(t *testing.T) {
	h := newHarness(t, at(2026, time.October, 18, 10, 0, 0), ptr(at(2026, time.October, 16, 23, 59, 0)))
	require.NoError(t, h.sched.Start(context.Background()))

	late := at(2026, time.October, 24, 0, 5, 0)
	h.now = late
	h.last().fn()

	assert.Equal(t, 1, h.store.deletes)
	assert.Equal(t, []time.Time{late}, h.store.resets)
	assert.Equal(t, at(2026, time.October, 30, 23, 59, 0), h.sched.Next())
}

func TestReschedule_StaleCallbackIsIgnored(t *testing.T) {
	h := newHarness(t, at(2026, time.October, 18, 10, 0, 0), ptr(at(2026, time.October, 16, 23, 59, 0)))
	require.NoError(t, h.sched.Start(context.Background()))
	first := h.last()

	settings := h.store.settings
	settings.Schedule = models.Schedule{DayOfWeek: time.Monday, Hour: 8, Minute: 0}
	require.NoError(t, h.sched.Reschedule(context.Background(), settings))

	assert.True(t, first.stopped)
	require.Len(t, h.timers, 2)
	assert.Equal(t, at(2026, time.October, 19, 8, 0, 0), h.sched.Next())

	first.fn()
	assert.Zero(t, h.store.deletes)
	assert.Len(t, h.timers, 2)
}

func TestFire_DeleteFailureStillRearms(t *testing.T) {
	h := newHarness(t, at(2026, time.October, 18, 10, 0, 0), ptr(at(2026, time.October, 16, 23, 59, 0)))
	require.NoError(t, h.sched.Start(context.Background()))

	h.store.deleteErr = errors.New("disk full")
	h.now = at(2026, time.October, 23, 23, 59, 0)
	h.last().fn()

	assert.GreaterOrEqual(t, h.store.deletes, 1)
	assert.Empty(t, h.store.resets)
	require.Len(t, h.timers, 2)
	assert.False(t, h.last().stopped)
	assert.Equal(t, at(2026, time.October, 30, 23, 59, 0), h.sched.Next())
}

func TestShutdown_IgnoresPendingFire(t *testing.T) {
	h := newHarness(t, at(2026, time.October, 18, 10, 0, 0), ptr(at(2026, time.October, 16, 23, 59, 0)))
	require.NoError(t, h.sched.Start(context.Background()))
	pending := h.last()

	h.sched.Shutdown()

	assert.True(t, pending.stopped)
	assert.True(t, h.sched.Next().IsZero())
	pending.fn()
	assert.Zero(t, h.store.deletes)

	err := h.sched.Reschedule(context.Background(), h.store.settings)
	assert.ErrorIs(t, err, ErrStopped)
}
