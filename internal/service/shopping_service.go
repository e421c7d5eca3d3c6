package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/saladbowl/internal/calculator"
	"github.com/mmynk/saladbowl/internal/models"
	"github.com/mmynk/saladbowl/internal/storage"
	"github.com/mmynk/saladbowl/pkg/api"
)

// ShoppingService implements the Connect ShoppingService.
type ShoppingService struct {
	store     storage.Store
	validator Validator
	logger    *slog.Logger
}

// NewShoppingService creates a new ShoppingService with the given storage backend.
func NewShoppingService(store storage.Store, validator Validator, logger *slog.Logger) *ShoppingService {
	return &ShoppingService{store: store, validator: validator, logger: logger}
}

// GetShoppingList scales the active template to the current roster.
func (s *ShoppingService) GetShoppingList(ctx context.Context, req *connect.Request[api.GetShoppingListRequest]) (*connect.Response[api.ShoppingList], error) {
	count, err := s.store.CountParticipants(ctx)
	if err != nil {
		s.logger.Error("GetShoppingList: count failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	recipe, err := s.store.GetActiveTemplate(ctx)
	if err != nil {
		s.logger.Error("GetShoppingList: template read failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	var exclusions calculator.Exclusions
	if recipe != nil {
		exclusions, err = s.store.ListExclusionsByIngredient(ctx, recipe.ID)
		if err != nil {
			s.logger.Error("GetShoppingList: exclusions read failed", "template_id", recipe.ID, "error", err)
			return nil, connect.NewError(connect.CodeInternal, err)
		}
	}

	list := calculator.BuildShoppingList(recipe, count, exclusions)
	return connect.NewResponse(toAPIShoppingList(list)), nil
}

// GetExclusions returns the caller's exclusions for the active template.
func (s *ShoppingService) GetExclusions(ctx context.Context, req *connect.Request[api.GetExclusionsRequest]) (*connect.Response[api.GetExclusionsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	recipe, err := s.store.GetActiveTemplate(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if recipe == nil {
		return connect.NewResponse(&api.GetExclusionsResponse{Exclusions: []string{}}), nil
	}

	stored, err := s.store.ListUserExclusions(ctx, userID, recipe.ID)
	if err != nil {
		s.logger.Error("GetExclusions failed", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	names := make([]string, len(stored))
	for i, e := range stored {
		names[i] = e.IngredientName
	}

	return connect.NewResponse(&api.GetExclusionsResponse{
		TemplateID: recipe.ID,
		Exclusions: calculator.KeepKnown(recipe.Ingredients, names),
	}), nil
}

// SetExclusions replaces the caller's exclusions for the active template.
// Names that are not ingredients of the template are ignored.
func (s *ShoppingService) SetExclusions(ctx context.Context, req *connect.Request[api.SetExclusionsRequest]) (*connect.Response[api.SetExclusionsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	recipe, err := s.store.GetActiveTemplate(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if recipe == nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, ErrNoActiveRecipe)
	}

	resolved := calculator.ResolveExclusions(recipe.Ingredients, req.Msg.Exclusions)
	rows := make([]*models.IngredientExclusion, len(resolved))
	names := make([]string, len(resolved))
	for i, r := range resolved {
		rows[i] = &models.IngredientExclusion{IngredientKey: r.Key, IngredientName: r.Name}
		names[i] = r.Name
	}

	if err := s.store.ReplaceExclusions(ctx, userID, recipe.ID, rows); err != nil {
		s.logger.Error("SetExclusions failed", "user_id", userID, "template_id", recipe.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Exclusions updated",
		"user_id", userID,
		"template_id", recipe.ID,
		"requested", len(req.Msg.Exclusions),
		"stored", len(resolved),
	)
	return connect.NewResponse(&api.SetExclusionsResponse{
		TemplateID: recipe.ID,
		Exclusions: names,
	}), nil
}

func toAPIShoppingList(list *calculator.ShoppingList) *api.ShoppingList {
	out := &api.ShoppingList{
		ParticipantCount: list.ParticipantCount,
		Items:            make([]api.ShoppingItem, len(list.Items)),
	}
	if list.Recipe != nil {
		out.Template = &api.RecipeSummary{
			ID:       list.Recipe.ID,
			Title:    list.Recipe.Title,
			Servings: list.Recipe.Servings,
		}
	}
	for i, item := range list.Items {
		out.Items[i] = api.ShoppingItem{
			Name:       item.Name,
			Unit:       item.Unit,
			Quantity:   item.Quantity,
			ExcludedBy: item.ExcludedBy,
		}
	}
	return out
}
