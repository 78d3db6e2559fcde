package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NutritionGoal holds a user's daily targets. One row per user.
type NutritionGoal struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Calories   float64   `gorm:"not null" json:"calories"`
	Protein    float64   `json:"protein"`
	Carbs      float64   `json:"carbs"`
	Fat        float64   `json:"fat"`
	WaterML    float64   `json:"water_ml"`
	StepTarget int       `json:"step_target"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (g *NutritionGoal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
