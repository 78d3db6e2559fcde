package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DiaryEntry is a logged meal referencing its food analysis. The portion
// multiplier is an integer percentage (100 = 1.0x) applied to the analysis
// nutrition values.
type DiaryEntry struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	AnalysisID        uuid.UUID      `gorm:"type:uuid;not null" json:"analysis_id"`
	Analysis          *FoodAnalysis  `gorm:"foreignKey:AnalysisID" json:"analysis,omitempty"`
	MealType          string         `gorm:"size:20;not null" json:"meal_type"`
	PortionMultiplier int            `gorm:"not null;default:100" json:"portion_multiplier"`
	Notes             string         `gorm:"type:text" json:"notes"`
	ConsumedAt        time.Time      `gorm:"index;not null" json:"consumed_at"`
}

func (e *DiaryEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
