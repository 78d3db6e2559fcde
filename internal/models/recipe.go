package models

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// SavedRecipe is a user-saved recipe; its ingredient lines feed the
// shopping-list aggregator.
type SavedRecipe struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
	UserID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Name         string           `gorm:"size:255;not null" json:"name"`
	Description  string           `gorm:"type:text" json:"description"`
	Ingredients  JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	Calories     float64          `json:"calories"`
	Protein      float64          `json:"protein"`
	Carbs        float64          `json:"carbs"`
	Fat          float64          `json:"fat"`
	Embedding    pgvector.Vector  `gorm:"type:vector(3)" json:"-"`
}

func (r *SavedRecipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
