package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/models"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/portion"
)

// ShoppingService builds and manages a user's shopping list from their
// saved recipes.
type ShoppingService struct {
	db      *gorm.DB
	recipes *RecipeService
}

func NewShoppingService(db *gorm.DB, recipes *RecipeService) *ShoppingService {
	return &ShoppingService{db: db, recipes: recipes}
}

// GenerateList aggregates the ingredients of the given owned recipes and
// replaces the user's current shopping list with the result.
func (s *ShoppingService) GenerateList(ctx context.Context, userID uuid.UUID, recipeIDs []uuid.UUID) ([]models.ShoppingListItem, error) {
	inputs := make([]portion.RecipeInput, 0, len(recipeIDs))
	for _, id := range recipeIDs {
		recipe, err := s.recipes.GetRecipe(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, portion.RecipeInput{
			Name:        recipe.Name,
			Ingredients: recipe.Ingredients,
		})
	}

	aggregated := portion.Aggregate(inputs)

	var items []models.ShoppingListItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.ShoppingListItem{}).Error; err != nil {
			return err
		}

		for _, a := range aggregated {
			item := models.ShoppingListItem{
				UserID:     userID,
				Ingredient: a.Ingredient,
				Quantity:   a.Quantity,
				Unit:       a.Unit,
				Display:    a.Display,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			items = append(items, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// ListItems returns the user's shopping list in insertion order.
func (s *ShoppingService) ListItems(ctx context.Context, userID uuid.UUID) ([]models.ShoppingListItem, error) {
	var items []models.ShoppingListItem
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

// SetChecked marks an item as checked or unchecked.
func (s *ShoppingService) SetChecked(ctx context.Context, userID, itemID uuid.UUID, checked bool) (*models.ShoppingListItem, error) {
	item, err := s.getOwnedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	item.Checked = checked
	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteItem removes one item from the list.
func (s *ShoppingService) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	item, err := s.getOwnedItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(item).Error
}

func (s *ShoppingService) getOwnedItem(ctx context.Context, userID, itemID uuid.UUID) (*models.ShoppingListItem, error) {
	var item models.ShoppingListItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if item.UserID != userID {
		return nil, ErrForbidden
	}
	return &item, nil
}
