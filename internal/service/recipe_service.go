package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/saladbowl/internal/models"
	"github.com/mmynk/saladbowl/internal/storage"
	"github.com/mmynk/saladbowl/internal/validation"
	"github.com/mmynk/saladbowl/pkg/api"
)

// RecipeService implements the Connect RecipeService.
type RecipeService struct {
	store     storage.Store
	validator Validator
	logger    *slog.Logger
}

// NewRecipeService creates a new RecipeService with the given storage backend.
func NewRecipeService(store storage.Store, validator Validator, logger *slog.Logger) *RecipeService {
	return &RecipeService{store: store, validator: validator, logger: logger}
}

// ListTemplates returns the library, most recently updated first.
func (s *RecipeService) ListTemplates(ctx context.Context, req *connect.Request[api.ListTemplatesRequest]) (*connect.Response[api.ListTemplatesResponse], error) {
	templates, err := s.store.ListTemplates(ctx)
	if err != nil {
		s.logger.Error("ListTemplates failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		s.logger.Error("ListTemplates: settings read failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]*api.Template, len(templates))
	for i, t := range templates {
		out[i] = toAPITemplate(t, settings.ActiveTemplateID)
	}
	return connect.NewResponse(&api.ListTemplatesResponse{
		Templates:        out,
		ActiveTemplateID: settings.ActiveTemplateID,
	}), nil
}

// GetActiveTemplate returns the active template, or a nil template.
func (s *RecipeService) GetActiveTemplate(ctx context.Context, req *connect.Request[api.GetActiveTemplateRequest]) (*connect.Response[api.GetActiveTemplateResponse], error) {
	t, err := s.store.GetActiveTemplate(ctx)
	if err != nil {
		s.logger.Error("GetActiveTemplate failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := &api.GetActiveTemplateResponse{}
	if t != nil {
		resp.Template = toAPITemplate(t, t.ID)
	}
	return connect.NewResponse(resp), nil
}

// CreateTemplate stores a new template and makes it active.
func (s *RecipeService) CreateTemplate(ctx context.Context, req *connect.Request[api.CreateTemplateRequest]) (*connect.Response[api.CreateTemplateResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	t, err := buildTemplate(req.Msg.Title, req.Msg.Servings, req.Msg.Ingredients)
	if err != nil {
		return nil, err
	}
	t.CreatedByUserID = userID

	if err := s.store.CreateTemplate(ctx, t); err != nil {
		s.logger.Error("CreateTemplate failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	if err := s.store.SetActiveTemplate(ctx, t.ID); err != nil {
		s.logger.Error("CreateTemplate: activation failed", "template_id", t.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Template created", "template_id", t.ID, "ingredients", len(t.Ingredients), "user_id", userID)
	return connect.NewResponse(&api.CreateTemplateResponse{Template: toAPITemplate(t, t.ID)}), nil
}

// UpdateTemplate replaces a template's title, servings and ingredients.
func (s *RecipeService) UpdateTemplate(ctx context.Context, req *connect.Request[api.UpdateTemplateRequest]) (*connect.Response[api.UpdateTemplateResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	t, err := buildTemplate(req.Msg.Title, req.Msg.Servings, req.Msg.Ingredients)
	if err != nil {
		return nil, err
	}
	t.ID = req.Msg.ID

	if err := s.store.UpdateTemplate(ctx, t); err != nil {
		return nil, storeError(err)
	}
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Template updated", "template_id", t.ID, "user_id", userID)
	return connect.NewResponse(&api.UpdateTemplateResponse{Template: toAPITemplate(t, settings.ActiveTemplateID)}), nil
}

// DeleteTemplate removes a template. Deleting the active one leaves no
// template active.
func (s *RecipeService) DeleteTemplate(ctx context.Context, req *connect.Request[api.DeleteTemplateRequest]) (*connect.Response[api.DeleteTemplateResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeleteTemplate(ctx, req.Msg.ID); err != nil {
		return nil, storeError(err)
	}
	settings, err := s.store.GetSettings(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Template deleted", "template_id", req.Msg.ID, "user_id", userID)
	return connect.NewResponse(&api.DeleteTemplateResponse{
		RemovedID:        req.Msg.ID,
		ActiveTemplateID: settings.ActiveTemplateID,
	}), nil
}

// ActivateTemplate makes an existing template the active one.
func (s *RecipeService) ActivateTemplate(ctx context.Context, req *connect.Request[api.ActivateTemplateRequest]) (*connect.Response[api.ActivateTemplateResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	t, err := s.store.GetTemplate(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError(err)
	}
	if err := s.store.SetActiveTemplate(ctx, t.ID); err != nil {
		s.logger.Error("ActivateTemplate failed", "template_id", t.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Template activated", "template_id", t.ID, "user_id", userID)
	return connect.NewResponse(&api.ActivateTemplateResponse{Template: toAPITemplate(t, t.ID)}), nil
}

// buildTemplate trims the input and drops ingredient lines that lack a name
// or a quantity. At least one line must remain.
func buildTemplate(title string, servings int, inputs []api.IngredientInput) (*models.Template, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, validation.Invalid("title", "is required")
	}

	ingredients := make([]models.Ingredient, 0, len(inputs))
	for _, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" || in.Quantity == nil {
			continue
		}
		ingredients = append(ingredients, models.Ingredient{
			Name:     name,
			Quantity: *in.Quantity,
			Unit:     strings.TrimSpace(in.Unit),
		})
	}
	if len(ingredients) == 0 {
		return nil, validation.Invalid("ingredients", "must contain at least one named ingredient with a quantity")
	}

	return &models.Template{
		Title:       title,
		Servings:    servings,
		Ingredients: ingredients,
	}, nil
}
