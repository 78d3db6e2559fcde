package portion

import (
	"fmt"
	"math"
	"strings"
)

// RecipeInput is the slice of a recipe the aggregator needs.
type RecipeInput struct {
	Name        string
	Ingredients []string
}

// AggregatedItem is one shopping-list line after grouping and rounding to
// a realistic purchase quantity.
type AggregatedItem struct {
	Ingredient string  `json:"ingredient"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	Display    string  `json:"display"`
}

var spiceWords = []string{
	"salt", "pepper", "cumin", "paprika", "oregano", "basil", "thyme",
	"cinnamon", "nutmeg", "chili powder", "curry", "turmeric", "vanilla",
	"spice", "seasoning", "powder",
}

var produceWords = []string{
	"apple", "banana", "orange", "lemon", "lime", "onion", "tomato",
	"potato", "carrot", "cucumber", "avocado", "zucchini", "eggplant",
	"bell pepper", "garlic",
}

var liquidWords = []string{
	"milk", "juice", "oil", "broth", "stock", "cream", "yogurt", "water",
	"vinegar", "sauce", "wine",
}

// Aggregate groups parsed ingredient lines by name, sums quantities that
// share a unit and maps each group to a realistic shopping quantity.
// Lines for the same ingredient in different units stay separate.
func Aggregate(recipes []RecipeInput) []AggregatedItem {
	type group struct {
		ingredient string
		unit       string
		quantity   float64
		countless  int
	}

	var order []string
	groups := make(map[string]*group)

	for _, r := range recipes {
		for _, line := range r.Ingredients {
			p := Parse(line)
			name := strings.ToLower(strings.TrimSpace(p.Ingredient))
			if name == "" {
				continue
			}
			name = singularize(name)

			key := name + "|" + p.Unit
			g, ok := groups[key]
			if !ok {
				g = &group{ingredient: name, unit: p.Unit}
				groups[key] = g
				order = append(order, key)
			}
			if p.Quantity > 0 {
				g.quantity += p.Quantity
			} else {
				g.countless++
			}
		}
	}

	items := make([]AggregatedItem, 0, len(order))
	for _, key := range order {
		g := groups[key]
		qty := g.quantity
		if qty == 0 && g.countless > 0 {
			qty = float64(g.countless)
		}
		items = append(items, realistic(g.ingredient, qty, g.unit))
	}

	return items
}

// realistic maps an aggregated quantity to something a person would buy.
func realistic(ingredient string, qty float64, unit string) AggregatedItem {
	switch {
	case strings.Contains(ingredient, "egg") && unit == "":
		// Eggs sell by the dozen.
		dozens := math.Ceil(qty / 12)
		if dozens < 1 {
			dozens = 1
		}
		return AggregatedItem{
			Ingredient: ingredient,
			Quantity:   dozens * 12,
			Unit:       "",
			Display:    fmt.Sprintf("%s dozen eggs", trimFloat(dozens)),
		}

	case matchesAny(ingredient, spiceWords):
		return AggregatedItem{
			Ingredient: ingredient,
			Quantity:   1,
			Unit:       "container",
			Display:    fmt.Sprintf("1 container %s", ingredient),
		}

	case matchesAny(ingredient, liquidWords) && isVolumeUnit(unit):
		totalML := qty * volumeToML(unit)
		bottles := math.Ceil(totalML / 1000)
		if bottles < 1 {
			bottles = 1
		}
		return AggregatedItem{
			Ingredient: ingredient,
			Quantity:   bottles,
			Unit:       "l",
			Display:    fmt.Sprintf("%s x 1L %s", trimFloat(bottles), ingredient),
		}

	case matchesAny(ingredient, produceWords) && unit == "":
		count := math.Ceil(qty)
		if count < 1 {
			count = 1
		}
		return AggregatedItem{
			Ingredient: ingredient,
			Quantity:   count,
			Unit:       "",
			Display:    fmt.Sprintf("%s %s", trimFloat(count), pluralizeCount(ingredient, count)),
		}
	}

	rounded := math.Ceil(qty)
	if rounded < 1 {
		rounded = 1
	}
	display := fmt.Sprintf("%s %s", trimFloat(rounded), ingredient)
	if unit != "" {
		display = fmt.Sprintf("%s %s %s", trimFloat(rounded), unit, ingredient)
	}
	return AggregatedItem{
		Ingredient: ingredient,
		Quantity:   rounded,
		Unit:       unit,
		Display:    display,
	}
}

func matchesAny(ingredient string, words []string) bool {
	for _, w := range words {
		if strings.Contains(ingredient, w) {
			return true
		}
	}
	return false
}

func isVolumeUnit(unit string) bool {
	switch unit {
	case "ml", "l", "cup", "tbsp", "tsp":
		return true
	}
	return false
}

func volumeToML(unit string) float64 {
	switch unit {
	case "l":
		return 1000
	case "cup":
		return 240
	case "tbsp":
		return 15
	case "tsp":
		return 5
	default:
		return 1
	}
}

func pluralizeCount(ingredient string, count float64) string {
	if count > 1 && !strings.HasSuffix(ingredient, "s") {
		return ingredient + "s"
	}
	return ingredient
}

func trimFloat(f float64) string {
	return strings.TrimSuffix(strings.TrimSuffix(fmt.Sprintf("%.2f", f), "0"), ".0")
}
