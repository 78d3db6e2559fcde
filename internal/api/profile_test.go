package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/models"
)

func TestGetAndUpdateProfile(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "GET", "/api/v1/user-profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile models.UserProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.NotEmpty(t, profile.Username)

	height := 180.5
	w = PerformRequest(router, "PUT", "/api/v1/user-profile", token, map[string]interface{}{
		"height_cm":      height,
		"activity_level": "active",
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, height, profile.HeightCM)
	assert.Equal(t, "active", profile.ActivityLevel)
}

func TestNutritionGoalsLifecycle(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)
	_, token := CreateTestUserAndToken(t, testDB)

	// No goals yet.
	w := PerformRequest(router, "GET", "/api/v1/nutrition-goals", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = PerformRequest(router, "POST", "/api/v1/nutrition-goals", token, map[string]interface{}{
		"calories":    2200,
		"protein":     140,
		"carbs":       250,
		"fat":         70,
		"water_ml":    2500,
		"step_target": 10000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, "GET", "/api/v1/nutrition-goals", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var goals models.NutritionGoal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &goals))
	assert.Equal(t, 2200.0, goals.Calories)
	assert.Equal(t, 10000, goals.StepTarget)

	// Upsert keeps a single row.
	w = PerformRequest(router, "POST", "/api/v1/nutrition-goals", token, map[string]interface{}{
		"calories": 2000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, testDB.DB.Model(&models.NutritionGoal{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGoalsValidation(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/nutrition-goals", token, map[string]interface{}{
		"calories": 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
