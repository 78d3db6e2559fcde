package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/models"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/service"
)

func setupAnalysisRouter(t *testing.T, testDB *TestDB, ai service.NutritionAI, vision service.LabelDetector) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	SetupAPI(router, Deps{
		DB:        testDB.DB,
		JWTSecret: "test-secret",
		AI:        ai,
		Vision:    vision,
		Uploader:  &StubUploader{},
	})

	return router
}

func performPhotoUpload(router *gin.Engine, token, contentType string, data []byte) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="photo"; filename="meal.jpg"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		panic(err)
	}
	if _, err := part.Write(data); err != nil {
		panic(err)
	}
	if err := writer.Close(); err != nil {
		panic(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/v1/analyze", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyzeTextScalesByParsedPortion(t *testing.T) {
	testDB := SetupTestDB(t)
	ai := &StubAI{Estimate: NutritionEstimateOverride{
		FoodName:   "Flour",
		Calories:   364,
		Protein:    10,
		Confidence: 0.9,
	}}
	router := setupAnalysisRouter(t, testDB, ai, &StubVision{})
	_, token := CreateTestUserAndToken(t, testDB)

	w := PerformRequest(router, "POST", "/api/v1/analyze-text", token, map[string]string{
		"description": "2 cups flour",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var analysis models.FoodAnalysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analysis))
	// 2 cups is 480g, so the per-100g estimate scales by 4.8.
	assert.InDelta(t, 480, analysis.WeightGrams, 0.01)
	assert.InDelta(t, 364*4.8, analysis.Calories, 0.01)
	assert.InDelta(t, 10*4.8, analysis.Protein, 0.01)
	assert.Equal(t, "text", analysis.Source)
}

func TestAnalyzePhotoHighConfidence(t *testing.T) {
	testDB := SetupTestDB(t)
	ai := &StubAI{Estimate: NutritionEstimateOverride{
		FoodName:   "Margherita Pizza",
		Calories:   800,
		Confidence: 0.92,
	}}
	router := setupAnalysisRouter(t, testDB, ai, &StubVision{})
	_, token := CreateTestUserAndToken(t, testDB)

	w := performPhotoUpload(router, token, "image/jpeg", []byte("fake-jpeg-bytes"))
	require.Equal(t, http.StatusCreated, w.Code)

	var result struct {
		Analysis             *models.FoodAnalysis `json:"analysis"`
		RequiresConfirmation bool                 `json:"requires_confirmation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.RequiresConfirmation)
	require.NotNil(t, result.Analysis)
	assert.Equal(t, "Margherita Pizza", result.Analysis.FoodName)
	assert.NotEmpty(t, result.Analysis.ImageURL)
}

func TestAnalyzePhotoRejectsBadContentType(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)
	_, token := CreateTestUserAndToken(t, testDB)

	w := performPhotoUpload(router, token, "application/pdf", []byte("not-an-image"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLowConfidenceConfirmationFlow(t *testing.T) {
	testDB := SetupTestDB(t)
	ai := &StubAI{Estimate: NutritionEstimateOverride{
		FoodName:   "Mystery Stew",
		Calories:   300,
		Confidence: 0.4,
	}}
	router := setupAnalysisRouter(t, testDB, ai, &StubVision{})
	_, token := CreateTestUserAndToken(t, testDB)

	w := performPhotoUpload(router, token, "image/jpeg", []byte("fake-jpeg-bytes"))
	require.Equal(t, http.StatusCreated, w.Code)

	var result struct {
		Confirmation         *models.FoodConfirmation `json:"confirmation"`
		RequiresConfirmation bool                     `json:"requires_confirmation"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.RequiresConfirmation)
	require.NotNil(t, result.Confirmation)
	assert.Equal(t, "pending", result.Confirmation.Status)

	// Pending confirmation shows up in the list.
	w = PerformRequest(router, "GET", "/api/v1/confirmations", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listResp struct {
		Confirmations []models.FoodConfirmation `json:"confirmations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.Len(t, listResp.Confirmations, 1)

	// Approving promotes it to a full analysis.
	approvePath := fmt.Sprintf("/api/v1/confirmations/%s/approve", result.Confirmation.ID)
	w = PerformRequest(router, "POST", approvePath, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var analysis models.FoodAnalysis
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &analysis))
	assert.Equal(t, "Mystery Stew", analysis.FoodName)
	assert.NotEqual(t, uuid.Nil, analysis.ID)

	// List is empty afterwards.
	w = PerformRequest(router, "GET", "/api/v1/confirmations", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Empty(t, listResp.Confirmations)
}

func TestRejectConfirmation(t *testing.T) {
	testDB := SetupTestDB(t)
	router := SetupTestRouter(t, testDB)
	userID, token := CreateTestUserAndToken(t, testDB)

	confirmation := models.FoodConfirmation{
		UserID:     userID,
		FoodName:   "Blurry Sandwich",
		Confidence: 0.3,
		Status:     "pending",
	}
	require.NoError(t, testDB.DB.Create(&confirmation).Error)

	path := fmt.Sprintf("/api/v1/confirmations/%s", confirmation.ID)
	w := PerformRequest(router, "DELETE", path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = PerformRequest(router, "DELETE", path, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
