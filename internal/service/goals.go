package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/models"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/types"
)

// GoalsService manages per-user daily nutrition targets.
type GoalsService struct {
	db *gorm.DB
}

func NewGoalsService(db *gorm.DB) *GoalsService {
	return &GoalsService{db: db}
}

// GetGoals returns the user's current targets, ErrNotFound when unset.
func (s *GoalsService) GetGoals(ctx context.Context, userID uuid.UUID) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

// SetGoals upserts the user's targets.
func (s *GoalsService) SetGoals(ctx context.Context, userID uuid.UUID, req *types.NutritionGoalsRequest) (*models.NutritionGoal, error) {
	var goal models.NutritionGoal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	goal.UserID = userID
	goal.Calories = req.Calories
	goal.Protein = req.Protein
	goal.Carbs = req.Carbs
	goal.Fat = req.Fat
	goal.WaterML = req.WaterML
	goal.StepTarget = req.StepTarget

	if err := s.db.WithContext(ctx).Save(&goal).Error; err != nil {
		return nil, err
	}

	return &goal, nil
}
