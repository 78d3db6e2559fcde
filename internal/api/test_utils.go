package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/database"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/models"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/service"
)

// TestDB holds the test database and auth service.
type TestDB struct {
	DB          *gorm.DB
	AuthService *service.AuthService
}

// SetupTestDB creates an isolated in-memory SQLite database with the full
// schema migrated.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(database.AllModels()...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return &TestDB{
		DB:          db,
		AuthService: service.NewAuthService(db, "test-secret"),
	}
}

// CreateTestUserAndToken creates a user with a profile and returns the id
// and a valid token.
func CreateTestUserAndToken(t *testing.T, testDB *TestDB) (uuid.UUID, string) {
	t.Helper()

	userID := uuid.New()
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("testpassword123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := models.User{
		ID:           userID,
		Name:         "Test User",
		Email:        fmt.Sprintf("testuser+%s@example.com", userID),
		PasswordHash: string(hashedPassword),
	}
	if err := testDB.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	profile := models.UserProfile{
		UserID:   userID,
		Username: fmt.Sprintf("testuser_%s", userID),
	}
	if err := testDB.DB.Create(&profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}

	token, err := testDB.AuthService.Login(user.Email, "testpassword123")
	if err != nil {
		t.Fatalf("failed to login test user: %v", err)
	}

	return userID, token
}

// StubAI returns canned responses instead of calling an AI provider.
type StubAI struct {
	Estimate NutritionEstimateOverride
	Advice   string
}

// NutritionEstimateOverride customizes the stub's estimate per test.
type NutritionEstimateOverride struct {
	FoodName   string
	Calories   float64
	Protein    float64
	Carbs      float64
	Fat        float64
	Confidence float64
}

func (s *StubAI) EstimateNutrition(ctx context.Context, description string) (*service.NutritionEstimate, error) {
	est := &service.NutritionEstimate{
		FoodName:    s.Estimate.FoodName,
		Calories:    s.Estimate.Calories,
		Protein:     s.Estimate.Protein,
		Carbs:       s.Estimate.Carbs,
		Fat:         s.Estimate.Fat,
		WeightGrams: 150,
		Confidence:  s.Estimate.Confidence,
	}
	if est.FoodName == "" {
		est.FoodName = "Test Food"
	}
	if est.Confidence == 0 {
		est.Confidence = 0.9
	}
	return est, nil
}

func (s *StubAI) DailyAdvice(ctx context.Context, prompt string) (string, error) {
	advice := s.Advice
	if advice == "" {
		advice = "Keep it up!"
	}
	return fmt.Sprintf(`{"advice":%q,"summary":"on track"}`, advice), nil
}

// StubVision always detects the configured labels.
type StubVision struct {
	Labels []service.FoodLabel
}

func (s *StubVision) DetectFood(ctx context.Context, imageData []byte) ([]service.FoodLabel, error) {
	if len(s.Labels) > 0 {
		return s.Labels, nil
	}
	return []service.FoodLabel{{Name: "Pizza", Confidence: 0.95}}, nil
}

// StubUploader returns a fake URL without touching S3.
type StubUploader struct{}

func (s *StubUploader) UploadMealPhoto(ctx context.Context, imageData []byte, contentType string) (string, error) {
	return "https://example.com/meal-photos/test.jpg", nil
}

// SetupTestRouter builds a router backed by the test database and stubs.
func SetupTestRouter(t *testing.T, testDB *TestDB) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(gin.Recovery())

	SetupAPI(router, Deps{
		DB:        testDB.DB,
		JWTSecret: "test-secret",
		AI:        &StubAI{},
		Vision:    &StubVision{},
		Uploader:  &StubUploader{},
	})

	return router
}

// PerformRequest makes a JSON request against the router.
func PerformRequest(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	router.ServeHTTP(w, req)
	return w
}
