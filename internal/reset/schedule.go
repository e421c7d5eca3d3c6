// Package reset clears the weekly roster on a recurring wall-clock schedule.
package reset

import (
	"time"

	"github.com/mmynk/saladbowl/internal/models"
)

// NextTrigger returns the earliest instant at or after now that falls on the
// schedule's weekday at hour:minute:00 in now's location. A trigger exactly
// at now counts as already passed, so the result is then one week out.
//
// Hour and minute are not range checked; out of range values overflow the
// way time.Date normalizes them.
func NextTrigger(s models.Schedule, now time.Time) time.Time {
	candidate := time.Date(now.Year(), now.Month(), now.Day(), s.Hour, s.Minute, 0, 0, now.Location())

	daysAhead := (int(s.DayOfWeek) - int(now.Weekday()) + 7) % 7
	if daysAhead == 0 && !candidate.After(now) {
		daysAhead = 7
	}

	return candidate.AddDate(0, 0, daysAhead)
}

// MostRecentTrigger returns the trigger one week before NextTrigger: the
// latest instant the reset should already have happened.
func MostRecentTrigger(s models.Schedule, now time.Time) time.Time {
	return NextTrigger(s, now).AddDate(0, 0, -7)
}

// delayUntil is the timer delay for next; never negative, so a trigger that
// slipped into the past fires immediately.
func delayUntil(next, now time.Time) time.Duration {
	if d := next.Sub(now); d > 0 {
		return d
	}
	return 0
}
