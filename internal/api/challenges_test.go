package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/models"
)

func TestChallengeProgress(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)
	_, token := CreateTestUserAndToken(t, testDB)

	challenge := models.Challenge{
		Name:         "Hydration Week",
		Description:  "Drink 2 liters of water every day for a week.",
		Metric:       "water_ml",
		Target:       1000,
		DurationDays: 7,
	}
	require.NoError(t, testDB.DB.Create(&challenge).Error)

	w := PerformRequest(router, "GET", "/api/v1/challenges", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var catalogResp struct {
		Challenges []models.Challenge `json:"challenges"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &catalogResp))
	require.Len(t, catalogResp.Challenges, 1)

	progressPath := fmt.Sprintf("/api/v1/challenges/%s/progress", challenge.ID)

	w = PerformRequest(router, "POST", progressPath, token, map[string]interface{}{
		"increment": 600,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var progress models.UserChallengeProgress
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &progress))
	assert.Equal(t, 600.0, progress.Progress)
	assert.Nil(t, progress.CompletedAt)

	// Crossing the target completes the challenge.
	w = PerformRequest(router, "POST", progressPath, token, map[string]interface{}{
		"increment": 500,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &progress))
	assert.Equal(t, 1100.0, progress.Progress)
	assert.NotNil(t, progress.CompletedAt)

	// Progress listing includes the challenge details.
	w = PerformRequest(router, "GET", "/api/v1/challenges/progress", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var listResp struct {
		Progress []models.UserChallengeProgress `json:"progress"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Progress, 1)
	require.NotNil(t, listResp.Progress[0].Challenge)
	assert.Equal(t, "Hydration Week", listResp.Progress[0].Challenge.Name)
}

func TestChallengeProgressUnknownChallenge(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/challenges/00000000-0000-0000-0000-000000000001/progress", token, map[string]interface{}{
		"increment": 100,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
