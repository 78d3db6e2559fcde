package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DrinkEntry struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	DrinkType  string    `gorm:"size:50;not null;default:'water'" json:"drink_type"`
	VolumeML   float64   `gorm:"not null" json:"volume_ml"`
	ConsumedAt time.Time `gorm:"index;not null" json:"consumed_at"`
}

func (e *DrinkEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

type WeightEntry struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	WeightKG   float64   `gorm:"not null" json:"weight_kg"`
	MeasuredAt time.Time `gorm:"index;not null" json:"measured_at"`
}

func (e *WeightEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// StepEntry keeps one row per user, day and source so a later device sync
// can coexist with manual entries.
type StepEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_steps_user_day_source" json:"user_id"`
	Date      time.Time `gorm:"uniqueIndex:idx_steps_user_day_source;not null" json:"date"`
	Count     int       `gorm:"not null" json:"count"`
	Source    string    `gorm:"size:20;not null;default:'manual';uniqueIndex:idx_steps_user_day_source" json:"source"`
}

func (e *StepEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
