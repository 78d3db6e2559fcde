package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/models"
)

func TestShoppingListGeneration(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)
	_, token := CreateTestUserAndToken(t, testDB)

	var recipeIDs []uuid.UUID
	recipes := []struct {
		name        string
		ingredients []string
	}{
		{"Pancakes", []string{"2 cups flour", "3 eggs", "1 cup milk"}},
		{"Flatbread", []string{"1.5 cups flour", "4 eggs", "1 tsp cumin"}},
	}
	for _, r := range recipes {
		w := PerformRequest(router, "POST", "/api/v1/recipes", token, map[string]interface{}{
			"name":        r.name,
			"ingredients": r.ingredients,
		})
		require.Equal(t, http.StatusCreated, w.Code)
		var recipe models.SavedRecipe
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
		recipeIDs = append(recipeIDs, recipe.ID)
	}

	w := PerformRequest(router, "POST", "/api/v1/shopping-list/generate", token, map[string]interface{}{
		"recipe_ids": recipeIDs,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var genResp struct {
		Items []models.ShoppingListItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &genResp))
	require.Len(t, genResp.Items, 4)

	byIngredient := map[string]models.ShoppingListItem{}
	for _, item := range genResp.Items {
		byIngredient[item.Ingredient] = item
	}

	// Flour sums across recipes and rounds up to whole cups.
	flour := byIngredient["flour"]
	assert.Equal(t, 4.0, flour.Quantity)
	assert.Equal(t, "cup", flour.Unit)

	// Seven eggs become a dozen.
	eggs := byIngredient["egg"]
	assert.Equal(t, 12.0, eggs.Quantity)
	assert.Equal(t, "1 dozen eggs", eggs.Display)

	// Milk rounds up to a 1L bottle.
	milk := byIngredient["milk"]
	assert.Equal(t, 1.0, milk.Quantity)
	assert.Equal(t, "l", milk.Unit)

	// Spices collapse to one container.
	cumin := byIngredient["cumin"]
	assert.Equal(t, "container", cumin.Unit)
}

func TestShoppingListCheckAndDelete(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)
	userID, token := CreateTestUserAndToken(t, testDB)

	item := models.ShoppingListItem{
		UserID:     userID,
		Ingredient: "butter",
		Quantity:   1,
		Display:    "1 butter",
	}
	require.NoError(t, testDB.DB.Create(&item).Error)

	path := fmt.Sprintf("/api/v1/shopping-list/%s", item.ID)
	w := PerformRequest(router, "PATCH", path, token, map[string]interface{}{
		"checked": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.ShoppingListItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.True(t, updated.Checked)

	w = PerformRequest(router, "DELETE", path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, "GET", "/api/v1/shopping-list", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Items []models.ShoppingListItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Empty(t, listResp.Items)
}

func TestShoppingGenerateReplacesPreviousList(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)
	userID, token := CreateTestUserAndToken(t, testDB)

	stale := models.ShoppingListItem{
		UserID:     userID,
		Ingredient: "old item",
		Display:    "1 old item",
	}
	require.NoError(t, testDB.DB.Create(&stale).Error)

	w := PerformRequest(router, "POST", "/api/v1/recipes", token, map[string]interface{}{
		"name":        "Toast",
		"ingredients": []string{"2 slices bread"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var recipe models.SavedRecipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))

	w = PerformRequest(router, "POST", "/api/v1/shopping-list/generate", token, map[string]interface{}{
		"recipe_ids": []uuid.UUID{recipe.ID},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = PerformRequest(router, "GET", "/api/v1/shopping-list", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Items []models.ShoppingListItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Items, 1)
	assert.Equal(t, "bread", listResp.Items[0].Ingredient)
}
