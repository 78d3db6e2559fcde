package api

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/middleware"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/service"
)

// Deps carries the external dependencies the API wires into its services.
type Deps struct {
	DB               *gorm.DB
	Redis            *redis.Client
	JWTSecret        string
	AI               service.NutritionAI
	Vision           service.LabelDetector
	Uploader         service.PhotoUploader
	FoodFactsBaseURL string
}

// SetupAPI builds the services and registers all /api/v1 routes.
func SetupAPI(router *gin.Engine, deps Deps) {
	authService := service.NewAuthService(deps.DB, deps.JWTSecret)
	profileService := service.NewProfileService(deps.DB)
	goalsService := service.NewGoalsService(deps.DB)
	diaryService := service.NewDiaryService(deps.DB)
	trackingService := service.NewTrackingService(deps.DB)
	analysisService := service.NewAnalysisService(deps.DB, deps.AI, deps.Vision, deps.Uploader)
	foodFactsService := service.NewFoodFactsService(deps.FoodFactsBaseURL)
	coachService := service.NewCoachService(deps.DB, deps.Redis, deps.AI, diaryService, trackingService, goalsService)
	recipeService := service.NewRecipeService(deps.DB)
	shoppingService := service.NewShoppingService(deps.DB, recipeService)
	challengeService := service.NewChallengeService(deps.DB)

	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService, goalsService)
	diaryHandler := NewDiaryHandler(diaryService)
	trackingHandler := NewTrackingHandler(trackingService)
	analysisHandler := NewAnalysisHandler(analysisService, foodFactsService, middleware.NewAnalysisRateLimiter(deps.Redis))
	coachHandler := NewCoachHandler(coachService, middleware.NewCoachingRateLimiter(deps.Redis))
	recipeHandler := NewRecipeHandler(recipeService)
	shoppingHandler := NewShoppingHandler(shoppingService)
	challengeHandler := NewChallengeHandler(challengeService)

	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		profileHandler.RegisterRoutes(protected)
		diaryHandler.RegisterRoutes(protected)
		trackingHandler.RegisterRoutes(protected)
		analysisHandler.RegisterRoutes(protected)
		coachHandler.RegisterRoutes(protected)
		recipeHandler.RegisterRoutes(protected)
		shoppingHandler.RegisterRoutes(protected)
		challengeHandler.RegisterRoutes(protected)
	}
}
