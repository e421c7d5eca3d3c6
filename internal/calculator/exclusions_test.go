package calculator

import (
	"reflect"
	"testing"

	"github.com/mmynk/saladbowl/internal/models"
)

func TestResolveExclusions(t *testing.T) {
	ingredients := []models.Ingredient{
		{Name: "Tomato", Quantity: 100, Unit: "g"},
		{Name: " Red Onion ", Quantity: 1, Unit: ""},
	}

	tests := []struct {
		name      string
		requested []string
		want      []ResolvedExclusion
	}{
		{
			name:      "unknown names dropped and case variants collapse",
			requested: []string{"Tomato", "Unicorn-Dust", "tomato "},
			want:      []ResolvedExclusion{{Key: "tomato", Name: "Tomato"}},
		},
		{
			name:      "display name comes from the template",
			requested: []string{"RED ONION"},
			want:      []ResolvedExclusion{{Key: "red onion", Name: "Red Onion"}},
		},
		{
			name:      "blank entries ignored",
			requested: []string{"", "   ", "tomato"},
			want:      []ResolvedExclusion{{Key: "tomato", Name: "Tomato"}},
		},
		{
			name:      "first-seen order kept",
			requested: []string{"red onion", "tomato"},
			want: []ResolvedExclusion{
				{Key: "red onion", Name: "Red Onion"},
				{Key: "tomato", Name: "Tomato"},
			},
		},
		{
			name:      "nothing requested",
			requested: nil,
			want:      []ResolvedExclusion{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveExclusions(ingredients, tt.requested)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveExclusions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveExclusions_DuplicateTemplateKeyUsesFirstSpelling(t *testing.T) {
	ingredients := []models.Ingredient{
		{Name: "Basil", Quantity: 5, Unit: "g"},
		{Name: "basil", Quantity: 2, Unit: "g"},
	}

	got := ResolveExclusions(ingredients, []string{"BASIL"})
	want := []ResolvedExclusion{{Key: "basil", Name: "Basil"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveExclusions() = %v, want %v", got, want)
	}
}

func TestKeepKnown(t *testing.T) {
	ingredients := []models.Ingredient{{Name: "Tomato"}, {Name: "Feta"}}

	got := KeepKnown(ingredients, []string{"Cucumber", "Feta", "Tomato"})
	want := []string{"Feta", "Tomato"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("KeepKnown() = %v, want %v", got, want)
	}
}
