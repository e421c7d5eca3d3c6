package api

// ShoppingItem is one aggregated line of the shopping list.
type ShoppingItem struct {
	Name       string   `json:"name"`
	Unit       string   `json:"unit"`
	Quantity   float64  `json:"quantity"`
	ExcludedBy []string `json:"excludedBy"`
}

// RecipeSummary identifies the template a shopping list was built from.
type RecipeSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Servings int    `json:"servings"`
}

type GetShoppingListRequest struct{}

// ShoppingList has a null template and no items when no template is active.
type ShoppingList struct {
	ParticipantCount int            `json:"participantCount"`
	Template         *RecipeSummary `json:"template"`
	Items            []ShoppingItem `json:"items"`
}

type GetExclusionsRequest struct{}

// GetExclusionsResponse lists the caller's excluded ingredient names for the
// active template, sorted by name.
type GetExclusionsResponse struct {
	TemplateID string   `json:"templateId,omitempty"`
	Exclusions []string `json:"exclusions"`
}

// SetExclusionsRequest replaces the caller's exclusions for the active
// template. Unknown names are dropped.
type SetExclusionsRequest struct {
	Exclusions []string `json:"exclusions" validate:"required,max=500"`
}

type SetExclusionsResponse struct {
	TemplateID string   `json:"templateId"`
	Exclusions []string `json:"exclusions"`
}
