package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/saladbowl/internal/models"
	"github.com/mmynk/saladbowl/internal/reset"
	"github.com/mmynk/saladbowl/internal/storage"
	"github.com/mmynk/saladbowl/pkg/api"
)

// Rescheduler re-arms the weekly reset after a schedule change.
type Rescheduler interface {
	Reschedule(ctx context.Context, settings models.Settings) error
}

// SettingsService implements the Connect SettingsService.
type SettingsService struct {
	store     storage.SettingsStore
	scheduler Rescheduler
	validator Validator
	logger    *slog.Logger
	now       func() time.Time
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(store storage.SettingsStore, scheduler Rescheduler, validator Validator, logger *slog.Logger) *SettingsService {
	return &SettingsService{
		store:     store,
		scheduler: scheduler,
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

// GetResetSettings returns the schedule and the next trigger.
func (s *SettingsService) GetResetSettings(ctx context.Context, req *connect.Request[api.GetResetSettingsRequest]) (*connect.Response[api.GetResetSettingsResponse], error) {
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		s.logger.Error("GetResetSettings failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.GetResetSettingsResponse{
		Settings:  toAPIResetSettings(settings),
		NextReset: reset.NextTrigger(settings.Schedule, s.now()),
	}), nil
}

// UpdateResetSettings persists a new schedule and re-arms the scheduler.
func (s *SettingsService) UpdateResetSettings(ctx context.Context, req *connect.Request[api.UpdateResetSettingsRequest]) (*connect.Response[api.UpdateResetSettingsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	schedule := models.Schedule{
		DayOfWeek: time.Weekday(*req.Msg.DayOfWeek),
		Hour:      *req.Msg.Hour,
		Minute:    *req.Msg.Minute,
	}
	settings, err := s.store.UpdateSchedule(ctx, schedule)
	if err != nil {
		s.logger.Error("UpdateResetSettings failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	if err := s.scheduler.Reschedule(ctx, *settings); err != nil {
		s.logger.Error("Reschedule failed", "error", err)
		return nil, connect.NewError(connect.CodeUnavailable, err)
	}

	s.logger.Info("Reset schedule updated",
		"user_id", userID,
		"day_of_week", schedule.DayOfWeek,
		"hour", schedule.Hour,
		"minute", schedule.Minute,
	)
	return connect.NewResponse(&api.UpdateResetSettingsResponse{
		Settings:  toAPIResetSettings(settings),
		NextReset: reset.NextTrigger(settings.Schedule, s.now()),
	}), nil
}

func toAPIResetSettings(settings *models.Settings) *api.ResetSettings {
	return &api.ResetSettings{
		DayOfWeek: int(settings.DayOfWeek),
		Hour:      settings.Hour,
		Minute:    settings.Minute,
		LastReset: settings.LastReset,
	}
}
