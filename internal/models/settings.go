package models

import "time"

// Default reset schedule: Friday 23:59 local time.
const (
	DefaultResetDayOfWeek = time.Friday
	DefaultResetHour      = 23
	DefaultResetMinute    = 59
)

// Schedule is a weekly wall-clock trigger.
type Schedule struct {
	// DayOfWeek is 0=Sunday..6=Saturday.
	DayOfWeek time.Weekday

	// Hour is 0-23, Minute is 0-59. Callers validate the ranges.
	Hour   int
	Minute int
}

// Settings is the singleton settings record.
type Settings struct {
	Schedule

	// LastReset is when the roster was last cleared; nil if never.
	LastReset *time.Time

	// ActiveTemplateID references the template the shopping list is built
	// from; empty when no template is active.
	ActiveTemplateID string
}
