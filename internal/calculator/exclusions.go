package calculator

import (
	"strings"

	"github.com/mmynk/saladbowl/internal/models"
	"github.com/mmynk/saladbowl/internal/normalize"
)

// ResolvedExclusion is a requested opt-out matched against a template.
type ResolvedExclusion struct {
	// Key is the normalized ingredient key.
	Key string
	// Name is the template's own spelling of the ingredient, trimmed.
	Name string
}

// ResolveExclusions filters free-text ingredient names down to the ones the
// template actually contains. Blank and unknown names are dropped silently and
// duplicates collapse to their first occurrence. When the template lists the
// same key twice, the first ingredient's spelling wins.
func ResolveExclusions(ingredients []models.Ingredient, requested []string) []ResolvedExclusion {
	names := make(map[string]string, len(ingredients))
	for _, ingredient := range ingredients {
		key := normalize.IngredientKey(ingredient.Name)
		if _, ok := names[key]; !ok {
			names[key] = strings.TrimSpace(ingredient.Name)
		}
	}

	resolved := []ResolvedExclusion{}
	seen := make(map[string]bool)
	for _, raw := range requested {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		key := normalize.IngredientKey(raw)
		name, ok := names[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		resolved = append(resolved, ResolvedExclusion{Key: key, Name: name})
	}

	return resolved
}

// KeepKnown returns the stored exclusion names whose key is still part of the
// template, preserving their order. Exclusions outlive edits to a template's
// ingredient list, so reads filter them again.
func KeepKnown(ingredients []models.Ingredient, names []string) []string {
	known := make(map[string]bool, len(ingredients))
	for _, ingredient := range ingredients {
		known[normalize.IngredientKey(ingredient.Name)] = true
	}

	out := []string{}
	for _, name := range names {
		if known[normalize.IngredientKey(name)] {
			out = append(out, name)
		}
	}
	return out
}
