package portion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Portion
	}{
		{"plain number with unit", "2 cups flour", Portion{Quantity: 2, Unit: "cup", Ingredient: "flour"}},
		{"mixed number", "1 1/2 cups flour", Portion{Quantity: 1.5, Unit: "cup", Ingredient: "flour"}},
		{"vulgar fraction", "½ cup sugar", Portion{Quantity: 0.5, Unit: "cup", Ingredient: "sugar"}},
		{"mixed vulgar fraction", "1½ cups milk", Portion{Quantity: 1.5, Unit: "cup", Ingredient: "milk"}},
		{"ascii fraction", "3/4 tsp vanilla", Portion{Quantity: 0.75, Unit: "tsp", Ingredient: "vanilla"}},
		{"decimal quantity", "2.5 tbsp olive oil", Portion{Quantity: 2.5, Unit: "tbsp", Ingredient: "olive oil"}},
		{"count without unit", "2 eggs", Portion{Quantity: 2, Ingredient: "eggs"}},
		{"count with descriptor", "4 biscuits", Portion{Quantity: 4, Ingredient: "biscuits"}},
		{"no quantity", "salt to taste", Portion{Ingredient: "salt to taste"}},
		{"empty string", "", Portion{}},
		{"unit synonym pound", "1 pound ground beef", Portion{Quantity: 1, Unit: "lb", Ingredient: "ground beef"}},
		{"unit synonym tablespoons", "3 tablespoons butter", Portion{Quantity: 3, Unit: "tbsp", Ingredient: "butter"}},
		{"unit with trailing dot", "2 tbsp. honey", Portion{Quantity: 2, Unit: "tbsp", Ingredient: "honey"}},
		{"metric grams", "100 g chicken breast", Portion{Quantity: 100, Unit: "g", Ingredient: "chicken breast"}},
		{"bare quantity", "3", Portion{Quantity: 3}},
		{"zero denominator degrades", "1/0 cup flour", Portion{Ingredient: "1/0 cup flour"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestNormalizeUnit(t *testing.T) {
	tests := map[string]string{
		"tablespoon":  "tbsp",
		"Tablespoons": "tbsp",
		"tbsp":        "tbsp",
		"teaspoons":   "tsp",
		"cups":        "cup",
		"Cup":         "cup",
		"pounds":      "lb",
		"lbs":         "lb",
		"ounces":      "oz",
		"grams":       "g",
		"kilograms":   "kg",
		"millilitres": "ml",
		"liters":      "l",
		"cloves":      "clove",
		"slices":      "slice",
		"pinches":     "pinch",
		"widgets":     "widget", // unknown units singularize
		"":            "",
	}

	for input, want := range tests {
		assert.Equal(t, want, NormalizeUnit(input), "NormalizeUnit(%q)", input)
	}
}

func TestNormalizeUnitIdempotent(t *testing.T) {
	inputs := []string{
		"tablespoons", "cups", "pounds", "grams", "cloves", "pinches",
		"widgets", "serving", "oz", "ml", "", "unknown-unit",
	}
	for _, u := range inputs {
		once := NormalizeUnit(u)
		assert.Equal(t, once, NormalizeUnit(once), "NormalizeUnit not a fixed point for %q", u)
	}
}

func TestToGrams(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"2 eggs", 100},
		{"1 small potato", 150},
		{"1 medium potato", 215},
		{"2 large potatoes", 600},
		{"1 small chicken breast", 120},
		{"1 medium mango", 120}, // generic size table
		{"100 g rice", 100},
		{"1 kg flour", 1000},
		{"250 ml milk", 250},
		{"1 l water", 1000},
		{"1 cup flour", 240},
		{"2 tbsp butter", 30},
		{"1 tsp salt", 5},
		{"1 lb beef", 453.6},
		{"2 oz cheese", 56.7},
		{"3 slices bread", 90},
		{"2 cloves garlic", 10},
		{"4 biscuits", 140},
		{"1 banana", 120},
		{"completely unparseable", 100},
		{"", 100},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.InDelta(t, tt.want, ToGrams(tt.input), 0.001)
		})
	}
}

func TestToGramsAlwaysFinitePositive(t *testing.T) {
	inputs := []string{
		"", "0 g nothing", "0.0 ml", "-5 g weirdness", "NaN", "salt to taste",
		"999999999 kg everything", "1/0 cup flour", "½", "eggs", "0 eggs",
	}
	for _, in := range inputs {
		g := ToGrams(in)
		assert.False(t, math.IsNaN(g), "ToGrams(%q) returned NaN", in)
		assert.False(t, math.IsInf(g, 0), "ToGrams(%q) returned Inf", in)
		assert.Greater(t, g, 0.0, "ToGrams(%q) not positive", in)
	}
}
