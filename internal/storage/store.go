// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/mmynk/saladbowl/internal/models"
)

var (
	// ErrNotFound is wrapped by stores when a referenced row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is wrapped by stores when a unique key is taken.
	ErrAlreadyExists = errors.New("already exists")
)

// Store defines the persistence operations of the roster.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	UserStore
	ParticipantStore
	TemplateStore
	SettingsStore
	ExclusionStore

	// Close releases any resources held by the store.
	Close() error
}

// UserStore manages registered accounts.
type UserStore interface {
	// CreateUser inserts a user. A taken email wraps ErrAlreadyExists.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByID and GetUserByEmail wrap ErrNotFound when nothing matches.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// ParticipantStore manages this week's roster.
type ParticipantStore interface {
	// ListParticipants returns the roster ordered by join time ascending.
	ListParticipants(ctx context.Context) ([]*models.Participant, error)

	// CountParticipants returns the roster size.
	CountParticipants(ctx context.Context) (int, error)

	// CreateParticipant inserts a participant, linking it to the user with
	// the same email if one exists. A taken email wraps ErrAlreadyExists.
	CreateParticipant(ctx context.Context, p *models.Participant) error

	GetParticipant(ctx context.Context, id string) (*models.Participant, error)
	GetParticipantByEmail(ctx context.Context, email string) (*models.Participant, error)

	// UpdateParticipant rewrites name and email and re-links the user.
	UpdateParticipant(ctx context.Context, p *models.Participant) error

	DeleteParticipant(ctx context.Context, id string) error

	// DeleteAllParticipants clears the roster and reports how many rows went.
	DeleteAllParticipants(ctx context.Context) (int64, error)
}

// TemplateStore manages the recipe library.
type TemplateStore interface {
	// ListTemplates returns all templates, most recently updated first.
	ListTemplates(ctx context.Context) ([]*models.Template, error)

	GetTemplate(ctx context.Context, id string) (*models.Template, error)

	// GetActiveTemplate returns the template referenced by the settings, or
	// nil when none is active.
	GetActiveTemplate(ctx context.Context) (*models.Template, error)

	// CreateTemplate inserts a template with its ingredients.
	CreateTemplate(ctx context.Context, t *models.Template) error

	// UpdateTemplate replaces title, servings and ingredients.
	UpdateTemplate(ctx context.Context, t *models.Template) error

	// DeleteTemplate removes a template. Its exclusions cascade and the
	// active reference is cleared if it pointed here.
	DeleteTemplate(ctx context.Context, id string) error
}

// SettingsStore manages the settings singleton.
type SettingsStore interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSchedule(ctx context.Context, schedule models.Schedule) (*models.Settings, error)

	// SetActiveTemplate points the settings at a template; empty clears it.
	SetActiveTemplate(ctx context.Context, templateID string) error

	SetLastReset(ctx context.Context, at time.Time) error
}

// ExclusionStore manages per-user ingredient opt-outs.
type ExclusionStore interface {
	// ListExclusionsByIngredient maps ingredient key to the display names of
	// the participants linked to each excluding user, in insertion order.
	// Users without a participant row on the roster do not appear.
	ListExclusionsByIngredient(ctx context.Context, templateID string) (map[string][]string, error)

	// ListUserExclusions returns the user's exclusions for a template.
	ListUserExclusions(ctx context.Context, userID, templateID string) ([]*models.IngredientExclusion, error)

	// ReplaceExclusions atomically replaces the user's set for a template.
	ReplaceExclusions(ctx context.Context, userID, templateID string, exclusions []*models.IngredientExclusion) error
}
