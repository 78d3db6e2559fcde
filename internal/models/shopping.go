package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShoppingListItem is one aggregated line on a user's shopping list.
type ShoppingListItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Ingredient string    `gorm:"size:255;not null" json:"ingredient"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `gorm:"size:20" json:"unit"`
	Display    string    `gorm:"size:255" json:"display"`
	Checked    bool      `gorm:"not null;default:false" json:"checked"`
}

func (i *ShoppingListItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
