package models

// Participant is one person enrolled on the current weekly roster.
// The whole roster is deleted by the weekly reset.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string

	// Name is the display name shown on the roster and in exclusion
	// attribution on the shopping list.
	Name string

	// Email is the normalized email; unique among current participants.
	Email string

	// UserID links the participant to a registered account with the same
	// email. Empty when nobody has registered that address.
	UserID string

	// CreatedByUserID is the account that added this participant, either the
	// participant themselves (self-join) or an admin.
	CreatedByUserID string

	// CreatedAt is the Unix timestamp of the join; the roster is ordered by it.
	CreatedAt int64
}
