package api

// Ingredient is one line of a template, quantities relative to Servings.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Template is a recipe template.
type Template struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Servings    int          `json:"servings"`
	Ingredients []Ingredient `json:"ingredients"`
	UpdatedAt   int64        `json:"updatedAt"`
	Active      bool         `json:"active"`
}

// IngredientInput is an ingredient as submitted by the editor. Lines without
// a name or a quantity are dropped before saving.
type IngredientInput struct {
	Name     string   `json:"name" validate:"max=200"`
	Quantity *float64 `json:"quantity" validate:"omitempty,gte=0"`
	Unit     string   `json:"unit" validate:"max=50"`
}

type ListTemplatesRequest struct{}

type ListTemplatesResponse struct {
	Templates        []*Template `json:"templates"`
	ActiveTemplateID string      `json:"activeTemplateId,omitempty"`
}

type GetActiveTemplateRequest struct{}

// GetActiveTemplateResponse has a nil Template when none is active.
type GetActiveTemplateResponse struct {
	Template *Template `json:"template"`
}

// CreateTemplateRequest creates a template and makes it the active one.
type CreateTemplateRequest struct {
	Title       string            `json:"title" validate:"required,max=200"`
	Servings    int               `json:"servings" validate:"required,min=1"`
	Ingredients []IngredientInput `json:"ingredients" validate:"required,dive"`
}

type CreateTemplateResponse struct {
	Template *Template `json:"template"`
}

type UpdateTemplateRequest struct {
	ID          string            `json:"id" validate:"required"`
	Title       string            `json:"title" validate:"required,max=200"`
	Servings    int               `json:"servings" validate:"required,min=1"`
	Ingredients []IngredientInput `json:"ingredients" validate:"required,dive"`
}

type UpdateTemplateResponse struct {
	Template *Template `json:"template"`
}

type DeleteTemplateRequest struct {
	ID string `json:"id" validate:"required"`
}

// DeleteTemplateResponse reports the active template after the delete;
// empty when the deleted one was active.
type DeleteTemplateResponse struct {
	RemovedID        string `json:"removedId"`
	ActiveTemplateID string `json:"activeTemplateId,omitempty"`
}

type ActivateTemplateRequest struct {
	ID string `json:"id" validate:"required"`
}

type ActivateTemplateResponse struct {
	Template *Template `json:"template"`
}
