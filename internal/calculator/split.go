package calculator

import (
	"fmt"
)

// Split is a manually entered total divided across the roster.
type Split struct {
	ParticipantCount int
	Total            float64

	// Share is what each participant owes; zero when nobody is enrolled.
	Share float64
}

// SplitEvenly divides the total equally among participantCount people.
// There is no payment tracking; the result is informational.
func SplitEvenly(total float64, participantCount int) (*Split, error) {
	if total < 0 {
		return nil, fmt.Errorf("total cannot be negative")
	}
	if participantCount < 0 {
		return nil, fmt.Errorf("participant count cannot be negative")
	}

	split := &Split{
		ParticipantCount: participantCount,
		Total:            total,
	}
	if participantCount > 0 {
		split.Share = total / float64(participantCount)
	}
	return split, nil
}
