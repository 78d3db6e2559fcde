package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/models"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/service"
)

func TestDrinksAddAndList(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/drinks", token, map[string]interface{}{
		"drink_type": "water",
		"volume_ml":  350,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Missing volume is rejected.
	w = PerformRequest(router, "POST", "/api/v1/drinks", token, map[string]interface{}{
		"drink_type": "coffee",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	today := time.Now().Format("2006-01-02")
	w = PerformRequest(router, "GET", "/api/v1/drinks?date="+today, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Drinks []models.DrinkEntry `json:"drinks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Drinks, 1)
	assert.Equal(t, 350.0, resp.Drinks[0].VolumeML)
}

func TestWeightBounds(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/weights", token, map[string]interface{}{
		"weight_kg": 72.5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	for _, weight := range []float64{10, 600} {
		w := PerformRequest(router, "POST", "/api/v1/weights", token, map[string]interface{}{
			"weight_kg": weight,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "weight %v should be rejected", weight)
	}

	w = PerformRequest(router, "GET", "/api/v1/weights", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Weights []models.WeightEntry `json:"weights"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Weights, 1)
}

func TestStepsUpsertPerSource(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)
	_, token := CreateTestUserAndToken(t, testDB)

	today := time.Now().Format("2006-01-02")

	w := PerformRequest(router, "POST", "/api/v1/steps", token, map[string]interface{}{
		"date":   today,
		"count":  4000,
		"source": "manual",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Same day and source replaces the count.
	w = PerformRequest(router, "POST", "/api/v1/steps", token, map[string]interface{}{
		"date":   today,
		"count":  6500,
		"source": "manual",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Different source is a separate row.
	w = PerformRequest(router, "POST", "/api/v1/steps", token, map[string]interface{}{
		"date":   today,
		"count":  7200,
		"source": "google_fit",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, "GET", "/api/v1/steps?date="+today, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Steps []models.StepEntry `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Steps, 2)

	counts := map[string]int{}
	for _, entry := range resp.Steps {
		counts[entry.Source] = entry.Count
	}
	assert.Equal(t, 6500, counts["manual"])
	assert.Equal(t, 7200, counts["google_fit"])
}

func TestStepTotalAcrossTimezones(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)
	userID, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/steps", token, map[string]interface{}{
		"date":  "2026-03-10",
		"count": 8000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// An evening in a western zone is still the same calendar day, so the
	// logged steps must show up in that day's total.
	evening := time.Date(2026, 3, 10, 18, 0, 0, 0, time.FixedZone("UTC-5", -5*3600))

	tracking := service.NewTrackingService(testDB.DB)
	total, err := tracking.StepTotal(context.Background(), userID, evening)
	require.NoError(t, err)
	assert.Equal(t, 8000, total)
}

func TestStepsRejectsUnknownSource(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/steps", token, map[string]interface{}{
		"date":   time.Now().Format("2006-01-02"),
		"count":  1000,
		"source": "fitbit",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
