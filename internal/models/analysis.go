package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodAnalysis is an AI-derived nutrition breakdown for a photographed or
// described food. Values are per single portion as analyzed.
type FoodAnalysis struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	FoodName    string         `gorm:"size:255;not null" json:"food_name"`
	Description string         `gorm:"type:text" json:"description"`
	Calories    float64        `json:"calories"`
	Protein     float64        `json:"protein"`
	Carbs       float64        `json:"carbs"`
	Fat         float64        `json:"fat"`
	WeightGrams float64        `json:"weight_grams"`
	Confidence  float64        `json:"confidence"`
	ImageURL    string         `gorm:"size:255" json:"image_url"`
	Source      string         `gorm:"size:20;default:'photo'" json:"source"`
}

func (a *FoodAnalysis) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// FoodConfirmation is a pending low-confidence AI detection awaiting user
// approval before it becomes a FoodAnalysis.
type FoodConfirmation struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	FoodName   string    `gorm:"size:255;not null" json:"food_name"`
	Calories   float64   `json:"calories"`
	Protein    float64   `json:"protein"`
	Carbs      float64   `json:"carbs"`
	Fat        float64   `json:"fat"`
	Confidence float64   `json:"confidence"`
	ImageURL   string    `gorm:"size:255" json:"image_url"`
	Status     string    `gorm:"size:20;default:'pending'" json:"status"`
}

func (c *FoodConfirmation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
