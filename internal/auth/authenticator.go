package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/mmynk/saladbowl/internal/models"
	"github.com/mmynk/saladbowl/internal/normalize"
	"github.com/mmynk/saladbowl/internal/storage"
)

var (
	ErrEmailTaken   = errors.New("email already registered")
	ErrUnknownEmail = errors.New("no account for this email")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrNameRequired = errors.New("name is required")
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (magic
// links, passkeys, OAuth, etc.) without changing the service layer code.
type Authenticator interface {
	// Register creates a new account. The email is normalized first.
	Register(ctx context.Context, email, name string) (*models.User, error)

	// Authenticate returns the account registered under email.
	Authenticate(ctx context.Context, email string) (*models.User, error)
}

// EmailAuthenticator identifies users by email address alone.
type EmailAuthenticator struct {
	users storage.UserStore
}

// NewEmailAuthenticator creates an authenticator backed by users.
func NewEmailAuthenticator(users storage.UserStore) *EmailAuthenticator {
	return &EmailAuthenticator{users: users}
}

// Register creates an account; a taken email returns ErrEmailTaken.
func (a *EmailAuthenticator) Register(ctx context.Context, email, name string) (*models.User, error) {
	email, err := validEmail(email)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameRequired
	}

	user := models.NewUser(email, name)
	if err := a.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Authenticate looks the account up; an unknown email returns ErrUnknownEmail.
func (a *EmailAuthenticator) Authenticate(ctx context.Context, email string) (*models.User, error) {
	email, err := validEmail(email)
	if err != nil {
		return nil, err
	}

	user, err := a.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUnknownEmail
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

func validEmail(email string) (string, error) {
	email = normalize.Email(email)
	if _, err := mail.ParseAddress(email); err != nil || email == "" {
		return "", ErrInvalidEmail
	}
	return email, nil
}
