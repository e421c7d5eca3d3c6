// Package service implements the saladbowl.v1 Connect services.
package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/saladbowl/internal/auth"
	"github.com/mmynk/saladbowl/internal/middleware"
	"github.com/mmynk/saladbowl/internal/models"
	"github.com/mmynk/saladbowl/internal/storage"
	"github.com/mmynk/saladbowl/pkg/api"
)

// ErrNoActiveRecipe is returned by exclusion writes when no template is active.
var ErrNoActiveRecipe = errors.New("no active recipe")

// Validator checks request messages; see internal/validation.
type Validator interface {
	Validate(s any) error
}

// requireUser returns the authenticated caller or an Unauthenticated error.
func requireUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}

// storeError maps storage sentinels to Connect codes.
func storeError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrAlreadyExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func toAPIParticipant(p *models.Participant) *api.Participant {
	return &api.Participant{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
	}
}

func toAPITemplate(t *models.Template, activeID string) *api.Template {
	ingredients := make([]api.Ingredient, len(t.Ingredients))
	for i, ing := range t.Ingredients {
		ingredients[i] = api.Ingredient{Name: ing.Name, Quantity: ing.Quantity, Unit: ing.Unit}
	}
	return &api.Template{
		ID:          t.ID,
		Title:       t.Title,
		Servings:    t.Servings,
		Ingredients: ingredients,
		UpdatedAt:   t.UpdatedAt,
		Active:      t.ID == activeID,
	}
}
