package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Challenge is a catalog entry ("drink 2L of water for 7 days").
type Challenge struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Metric       string    `gorm:"size:30;not null" json:"metric"`
	Target       float64   `gorm:"not null" json:"target"`
	DurationDays int       `gorm:"not null" json:"duration_days"`
}

func (c *Challenge) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type UserChallengeProgress struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_challenge_user" json:"user_id"`
	ChallengeID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_challenge_user" json:"challenge_id"`
	Challenge   *Challenge `gorm:"foreignKey:ChallengeID" json:"challenge,omitempty"`
	Progress    float64    `gorm:"not null;default:0" json:"progress"`
	CompletedAt *time.Time `json:"completed_at"`
}

func (p *UserChallengeProgress) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
