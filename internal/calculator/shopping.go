package calculator

import (
	"math"

	"github.com/mmynk/saladbowl/internal/models"
	"github.com/mmynk/saladbowl/internal/normalize"
)

// ShoppingItem is one scaled line of the shopping list.
type ShoppingItem struct {
	Name     string
	Unit     string
	Quantity float64

	// ExcludedBy lists the participants who opted out of this ingredient.
	ExcludedBy []string
}

// RecipeSummary identifies the template a shopping list was built from.
type RecipeSummary struct {
	ID       string
	Title    string
	Servings int
}

// ShoppingList is the result of BuildShoppingList.
type ShoppingList struct {
	ParticipantCount int

	// Recipe is nil when no template is active.
	Recipe *RecipeSummary

	Items []ShoppingItem
}

// Exclusions maps an ingredient key to the display names of the participants
// who opted out of that ingredient.
type Exclusions map[string][]string

// BuildShoppingList scales the recipe's ingredients to the roster.
//
// For every ingredient, in template order:
//
//	eligible = max(participantCount - len(excludedBy), 0)
//	quantity = round(ingredient.Quantity * eligible / servings, 1 decimal)
//
// A recipe with fewer than one baseline serving is treated as serving one.
// With no participants every quantity is zero and nobody is listed as
// excluded. A nil recipe yields an empty list. It never fails.
func BuildShoppingList(recipe *models.Template, participantCount int, exclusions Exclusions) *ShoppingList {
	if participantCount < 0 {
		participantCount = 0
	}

	list := &ShoppingList{
		ParticipantCount: participantCount,
		Items:            []ShoppingItem{},
	}
	if recipe == nil {
		return list
	}

	servings := recipe.Servings
	if servings < 1 {
		servings = 1
	}
	list.Recipe = &RecipeSummary{
		ID:       recipe.ID,
		Title:    recipe.Title,
		Servings: recipe.Servings,
	}

	for _, ingredient := range recipe.Ingredients {
		item := ShoppingItem{
			Name:       ingredient.Name,
			Unit:       ingredient.Unit,
			ExcludedBy: []string{},
		}
		if participantCount > 0 {
			item.ExcludedBy = distinct(exclusions[normalize.IngredientKey(ingredient.Name)])
			eligible := max(participantCount-len(item.ExcludedBy), 0)
			factor := float64(eligible) / float64(servings)
			item.Quantity = RoundQuantity(ingredient.Quantity * factor)
		}
		list.Items = append(list.Items, item)
	}

	return list
}

// RoundQuantity rounds to one decimal place, halves away from zero.
func RoundQuantity(value float64) float64 {
	return math.Round(value*10) / 10
}

// distinct returns names without duplicates, keeping first-seen order.
func distinct(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
