package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/models"
)

// ChallengeService manages the challenge catalog and per-user progress.
type ChallengeService struct {
	db *gorm.DB
}

func NewChallengeService(db *gorm.DB) *ChallengeService {
	return &ChallengeService{db: db}
}

// ListChallenges returns the seeded catalog.
func (s *ChallengeService) ListChallenges(ctx context.Context) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := s.db.WithContext(ctx).Order("name ASC").Find(&challenges).Error
	return challenges, err
}

// ListProgress returns the user's progress rows with their challenges.
func (s *ChallengeService) ListProgress(ctx context.Context, userID uuid.UUID) ([]models.UserChallengeProgress, error) {
	var progress []models.UserChallengeProgress
	err := s.db.WithContext(ctx).
		Preload("Challenge").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&progress).Error
	return progress, err
}

// AddProgress increments the user's progress on a challenge, creating the
// row on first report. Reaching the target marks the challenge complete.
func (s *ChallengeService) AddProgress(ctx context.Context, userID, challengeID uuid.UUID, increment float64) (*models.UserChallengeProgress, error) {
	var challenge models.Challenge
	if err := s.db.WithContext(ctx).First(&challenge, "id = ?", challengeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var progress models.UserChallengeProgress
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND challenge_id = ?", userID, challengeID).
		First(&progress).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	progress.UserID = userID
	progress.ChallengeID = challengeID
	progress.Progress += increment

	if progress.CompletedAt == nil && progress.Progress >= challenge.Target {
		now := time.Now()
		progress.CompletedAt = &now
	}

	if err := s.db.WithContext(ctx).Save(&progress).Error; err != nil {
		return nil, err
	}

	progress.Challenge = &challenge
	return &progress, nil
}
