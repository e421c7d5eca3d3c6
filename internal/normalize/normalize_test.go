package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIngredientKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Tomato", "tomato"},
		{"trims", "  tomato \t", "tomato"},
		{"keeps inner spaces", "Red Onion", "red onion"},
		{"composes decomposed umlaut", "Ka\u0308se", "k\u00e4se"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IngredientKey(tt.in))
		})
	}
}

func TestIngredientKey_ComposedAndDecomposedMatch(t *testing.T) {
	assert.Equal(t, IngredientKey("K\u00e4se"), IngredientKey("Ka\u0308se"))
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "alice@example.com", Email("  Alice@Example.COM "))
	assert.Equal(t, "", Email(""))
}
