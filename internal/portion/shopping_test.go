package portion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateSumsSharedUnits(t *testing.T) {
	recipes := []RecipeInput{
		{Name: "Pancakes", Ingredients: []string{"2 cups flour", "1 cup milk"}},
		{Name: "Crepes", Ingredients: []string{"1 1/2 cups flour", "2 cups milk"}},
	}

	items := Aggregate(recipes)

	flour := findItem(t, items, "flour")
	assert.Equal(t, "cup", flour.Unit)
	assert.Equal(t, 4.0, flour.Quantity) // 3.5 rounds up to a whole cup

	// Milk is a liquid: 3 cups = 720ml rounds up to one 1L bottle.
	milk := findItem(t, items, "milk")
	assert.Equal(t, "l", milk.Unit)
	assert.Equal(t, 1.0, milk.Quantity)
}

func TestAggregateEggsRoundToDozens(t *testing.T) {
	recipes := []RecipeInput{
		{Name: "Omelette", Ingredients: []string{"3 eggs"}},
		{Name: "Cake", Ingredients: []string{"4 eggs"}},
	}

	items := Aggregate(recipes)
	eggs := findItem(t, items, "egg")
	assert.Equal(t, 12.0, eggs.Quantity)
	assert.Equal(t, "1 dozen eggs", eggs.Display)
}

func TestAggregateSpicesCollapseToContainer(t *testing.T) {
	recipes := []RecipeInput{
		{Name: "Curry", Ingredients: []string{"1 tsp cumin", "2 tsp cumin"}},
	}

	items := Aggregate(recipes)
	cumin := findItem(t, items, "cumin")
	assert.Equal(t, 1.0, cumin.Quantity)
	assert.Equal(t, "container", cumin.Unit)
	assert.Equal(t, "1 container cumin", cumin.Display)
}

func TestAggregateProduceRoundsToCount(t *testing.T) {
	recipes := []RecipeInput{
		{Name: "Salad", Ingredients: []string{"1 tomato", "2 tomatoes"}},
	}

	items := Aggregate(recipes)
	tomato := findItem(t, items, "tomato")
	assert.Equal(t, 3.0, tomato.Quantity)
	assert.Equal(t, "3 tomatos", tomato.Display)
}

func TestAggregateKeepsMismatchedUnitsSeparate(t *testing.T) {
	recipes := []RecipeInput{
		{Name: "A", Ingredients: []string{"200 g rice", "1 cup rice"}},
	}

	items := Aggregate(recipes)
	assert.Len(t, items, 2)
}

func TestAggregateSkipsEmptyAndHandlesQuantityless(t *testing.T) {
	recipes := []RecipeInput{
		{Name: "Soup", Ingredients: []string{"", "   ", "salt to taste"}},
	}

	items := Aggregate(recipes)
	assert.Len(t, items, 1)
	assert.Equal(t, "salt to taste", items[0].Ingredient)
	// Quantity-less spice still becomes a single container.
	assert.Equal(t, "container", items[0].Unit)
}

func findItem(t *testing.T, items []AggregatedItem, ingredient string) AggregatedItem {
	t.Helper()
	for _, it := range items {
		if it.Ingredient == ingredient {
			return it
		}
	}
	t.Fatalf("ingredient %q not found in %v", ingredient, items)
	return AggregatedItem{}
}
