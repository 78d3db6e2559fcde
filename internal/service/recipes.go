package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/models"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/types"
)

// RecipeService manages a user's saved recipes.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// SaveRecipe stores a recipe with an embedding over its name, description
// and ingredients.
func (s *RecipeService) SaveRecipe(ctx context.Context, userID uuid.UUID, req *types.CreateRecipeRequest) (*models.SavedRecipe, error) {
	embeddingText := req.Name + " " + req.Description + " " + strings.Join(req.Ingredients, " ")

	recipe := models.SavedRecipe{
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Calories:     req.Calories,
		Protein:      req.Protein,
		Carbs:        req.Carbs,
		Fat:          req.Fat,
		Embedding:    GenerateEmbedding(embeddingText),
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListRecipes returns the user's recipes. With a query, Postgres orders by
// embedding distance; other dialects fall back to a LIKE match.
func (s *RecipeService) ListRecipes(ctx context.Context, userID uuid.UUID, query string) ([]models.SavedRecipe, error) {
	tx := s.db.WithContext(ctx).Where("saved_recipes.user_id = ?", userID)

	query = strings.TrimSpace(query)
	if query != "" {
		if s.db.Dialector.Name() == "postgres" {
			vec := GenerateEmbedding(query)
			subQuery := s.db.Model(&models.SavedRecipe{}).
				Select("id, embedding <-> ? as similarity", vec)
			tx = tx.Joins("JOIN (?) as search ON saved_recipes.id = search.id", subQuery).
				Order("search.similarity ASC")
		} else {
			// Keyword fallback for non-PostgreSQL databases.
			like := "%" + strings.ToLower(query) + "%"
			tx = tx.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
		}
	} else {
		tx = tx.Order("created_at DESC")
	}

	var recipes []models.SavedRecipe
	if err := tx.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe returns one owned recipe.
func (s *RecipeService) GetRecipe(ctx context.Context, userID, recipeID uuid.UUID) (*models.SavedRecipe, error) {
	var recipe models.SavedRecipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if recipe.UserID != userID {
		return nil, ErrForbidden
	}
	return &recipe, nil
}

// DeleteRecipe removes an owned recipe.
func (s *RecipeService) DeleteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	recipe, err := s.GetRecipe(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(recipe).Error
}
