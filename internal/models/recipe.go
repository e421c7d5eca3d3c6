package models

// Template is a recipe template. Its ingredient quantities are expressed for
// Servings people; the shopping list scales them to the roster.
type Template struct {
	// ID is the unique identifier for the template (UUID format).
	ID string

	// Title is the human-readable recipe name.
	Title string

	// Servings is the baseline serving count, the scaling denominator.
	// Always a positive integer.
	Servings int

	// Ingredients in their stored order.
	Ingredients []Ingredient

	// CreatedByUserID is the account that created the template, if any.
	CreatedByUserID string

	// UpdatedAt is the Unix timestamp of the last save.
	UpdatedAt int64
}

// Ingredient is a single line of a recipe template.
type Ingredient struct {
	// Name is free text. Matching uses normalize.IngredientKey(Name).
	Name string

	// Quantity is non-negative and relative to Template.Servings.
	Quantity float64

	// Unit is free text and may be empty (e.g. "g", "Stk", "").
	Unit string
}

// IngredientExclusion records that a user opts out of one ingredient of one
// template. Unique per (UserID, TemplateID, IngredientKey).
type IngredientExclusion struct {
	UserID     string
	TemplateID string

	// IngredientKey is the normalized ingredient name used for matching.
	IngredientKey string

	// IngredientName is the template's own spelling, used for display.
	IngredientName string

	// CreatedAt is the Unix timestamp when the exclusion was stored.
	CreatedAt int64
}
