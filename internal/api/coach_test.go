package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/models"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/service"
)

func TestDailyCoaching(t *testing.T) {
	testDB := SetupTestDB(t)
	ai := &StubAI{Advice: "Drink more water this afternoon."}
	router := setupAnalysisRouter(t, testDB, ai, &StubVision{})
	userID, token := CreateTestUserAndToken(t, testDB)

	// Log a meal and a drink so the coach has something to work with.
	analysis := createTestAnalysis(t, testDB, userID)
	w := PerformRequest(router, "POST", "/api/v1/diary", token, map[string]interface{}{
		"analysis_id":        analysis.ID,
		"meal_type":          "lunch",
		"portion_multiplier": 100,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = PerformRequest(router, "POST", "/api/v1/drinks", token, map[string]interface{}{
		"volume_ml": 500,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = PerformRequest(router, "GET", "/api/v1/coaching/daily", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var coaching service.DailyCoaching
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &coaching))
	assert.Equal(t, "Drink more water this afternoon.", coaching.Advice)
	assert.InDelta(t, 400, coaching.Totals.Calories, 0.01)
	assert.InDelta(t, 500, coaching.WaterML, 0.01)

	// The generation also writes the coach memory.
	var memory models.AICoachMemory
	require.NoError(t, testDB.DB.Where("user_id = ?", userID).First(&memory).Error)
	assert.Equal(t, "Drink more water this afternoon.", memory.LastAdvice)
	assert.Equal(t, "on track", memory.Summary)
}

func TestReflections(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/reflections", token, map[string]interface{}{
		"mood":    "good",
		"content": "Felt full after lunch, skipped the snack.",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Content is required.
	w = PerformRequest(router, "POST", "/api/v1/reflections", token, map[string]interface{}{
		"mood": "bad",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = PerformRequest(router, "GET", "/api/v1/reflections", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Reflections []models.Reflection `json:"reflections"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Reflections, 1)
	assert.Equal(t, "good", resp.Reflections[0].Mood)
}
