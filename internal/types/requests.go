package types

import "github.com/google/uuid"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Username string `json:"username" binding:"required,min=3,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Username      string   `json:"username"`
	HeightCM      *float64 `json:"height_cm"`
	Sex           *string  `json:"sex"`
	ActivityLevel *string  `json:"activity_level"`
}

type NutritionGoalsRequest struct {
	Calories   float64 `json:"calories" binding:"required,gt=0"`
	Protein    float64 `json:"protein" binding:"gte=0"`
	Carbs      float64 `json:"carbs" binding:"gte=0"`
	Fat        float64 `json:"fat" binding:"gte=0"`
	WaterML    float64 `json:"water_ml" binding:"gte=0"`
	StepTarget int     `json:"step_target" binding:"gte=0"`
}

type AnalyzeTextRequest struct {
	Description string `json:"description" binding:"required"`
}

type CreateDiaryEntryRequest struct {
	AnalysisID        uuid.UUID `json:"analysis_id" binding:"required"`
	MealType          string    `json:"meal_type" binding:"required,oneof=breakfast lunch dinner snack"`
	PortionMultiplier int       `json:"portion_multiplier" binding:"required,min=10,max=1000"`
	Notes             string    `json:"notes"`
	ConsumedAt        string    `json:"consumed_at"`
}

type UpdateDiaryEntryRequest struct {
	MealType          *string `json:"meal_type" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	PortionMultiplier *int    `json:"portion_multiplier" binding:"omitempty,min=10,max=1000"`
	Notes             *string `json:"notes"`
}

type CreateDrinkRequest struct {
	DrinkType string  `json:"drink_type"`
	VolumeML  float64 `json:"volume_ml" binding:"required,gt=0"`
}

type CreateWeightRequest struct {
	WeightKG float64 `json:"weight_kg" binding:"required,min=20,max=500"`
}

type CreateStepsRequest struct {
	Date   string `json:"date" binding:"required"`
	Count  int    `json:"count" binding:"gte=0"`
	Source string `json:"source" binding:"omitempty,oneof=manual google_fit health_connect"`
}

type CreateReflectionRequest struct {
	Mood    string `json:"mood"`
	Content string `json:"content" binding:"required"`
}

type CreateRecipeRequest struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients" binding:"required,min=1"`
	Instructions []string `json:"instructions"`
	Calories     float64  `json:"calories"`
	Protein      float64  `json:"protein"`
	Carbs        float64  `json:"carbs"`
	Fat          float64  `json:"fat"`
}

type GenerateShoppingListRequest struct {
	RecipeIDs []uuid.UUID `json:"recipe_ids" binding:"required,min=1"`
}

type UpdateShoppingItemRequest struct {
	Checked *bool `json:"checked" binding:"required"`
}

type ChallengeProgressRequest struct {
	Increment float64 `json:"increment" binding:"required,gt=0"`
}
