package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/saladbowl/internal/models"
	"github.com/mmynk/saladbowl/internal/storage"
)

// GetSettings reads the settings singleton.
func (s *SQLiteStore) GetSettings(ctx context.Context) (*models.Settings, error) {
	var (
		settings  models.Settings
		day       int
		lastReset sql.NullInt64
		activeID  sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT reset_day_of_week, reset_hour, reset_minute, last_reset, active_template_id
		 FROM settings WHERE id = 1`,
	).Scan(&day, &settings.Hour, &settings.Minute, &lastReset, &activeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("settings: %w", storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	settings.DayOfWeek = time.Weekday(day)
	if lastReset.Valid {
		at := time.UnixMilli(lastReset.Int64)
		settings.LastReset = &at
	}
	settings.ActiveTemplateID = activeID.String
	return &settings, nil
}

// UpdateSchedule stores a new reset schedule and returns the full settings.
func (s *SQLiteStore) UpdateSchedule(ctx context.Context, schedule models.Schedule) (*models.Settings, error) {
	_, err := s.db.ExecContext(ctx,
		"UPDATE settings SET reset_day_of_week = ?, reset_hour = ?, reset_minute = ? WHERE id = 1",
		int(schedule.DayOfWeek), schedule.Hour, schedule.Minute,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update schedule: %w", err)
	}
	return s.GetSettings(ctx)
}

// SetActiveTemplate points the settings at templateID; "" clears it.
func (s *SQLiteStore) SetActiveTemplate(ctx context.Context, templateID string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE settings SET active_template_id = ? WHERE id = 1",
		nullString(templateID),
	)
	if err != nil {
		return fmt.Errorf("failed to set active template: %w", err)
	}
	return nil
}

// SetLastReset records when the roster was last cleared, with millisecond
// precision.
func (s *SQLiteStore) SetLastReset(ctx context.Context, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE settings SET last_reset = ? WHERE id = 1",
		at.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to set last reset: %w", err)
	}
	return nil
}
