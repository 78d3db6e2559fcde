package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AICoachMemory is the rolling per-user context the coach carries between
// days. One row per user.
type AICoachMemory struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Summary    string    `gorm:"type:text" json:"summary"`
	LastAdvice string    `gorm:"type:text" json:"last_advice"`
}

func (m *AICoachMemory) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Reflection is a user's free-form journal note shown to the coach.
type Reflection struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Mood      string    `gorm:"size:20" json:"mood"`
	Content   string    `gorm:"type:text;not null" json:"content"`
}

func (r *Reflection) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
