package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
// Accounts are passwordless: registering or logging in with an email issues
// a session token.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Name is the display name of the user.
	Name string

	// Email is the normalized (trimmed, lowercased) email address.
	// Unique across users and used to link participants to accounts.
	Email string

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64
}

// NewUser creates a user with a fresh ID and creation timestamp.
func NewUser(email, name string) *User {
	return &User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().Unix(),
	}
}
