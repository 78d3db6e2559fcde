package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/models"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/portion"
)

// ConfirmationThreshold is the confidence below which an analysis is held
// as a pending confirmation instead of being recorded directly.
const ConfirmationThreshold = 0.55

// AnalysisResult is the outcome of an analyze call. Exactly one of
// Analysis or Confirmation is set.
type AnalysisResult struct {
	Analysis             *models.FoodAnalysis     `json:"analysis,omitempty"`
	Confirmation         *models.FoodConfirmation `json:"confirmation,omitempty"`
	RequiresConfirmation bool                     `json:"requires_confirmation"`
}

// AnalysisService turns photos and descriptions into nutrition records.
type AnalysisService struct {
	db       *gorm.DB
	ai       NutritionAI
	vision   LabelDetector
	uploader PhotoUploader
}

func NewAnalysisService(db *gorm.DB, ai NutritionAI, vision LabelDetector, uploader PhotoUploader) *AnalysisService {
	return &AnalysisService{
		db:       db,
		ai:       ai,
		vision:   vision,
		uploader: uploader,
	}
}

// AnalyzePhoto uploads the photo, detects labels, asks the AI for nutrition
// and records the result. Low confidence yields a pending confirmation.
func (s *AnalysisService) AnalyzePhoto(ctx context.Context, userID uuid.UUID, imageData []byte, contentType string) (*AnalysisResult, error) {
	imageURL, err := s.uploader.UploadMealPhoto(ctx, imageData, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}

	labels, err := s.vision.DetectFood(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze photo: %w", err)
	}
	if len(labels) == 0 {
		return nil, errors.New("no food detected in photo")
	}

	// Detection confidence caps the final confidence so a shaky
	// identification cannot be reported as certain.
	names := make([]string, 0, len(labels))
	for i, l := range labels {
		if i >= 5 {
			break
		}
		names = append(names, l.Name)
	}
	detectionConfidence := labels[0].Confidence

	estimate, err := s.ai.EstimateNutrition(ctx, strings.Join(names, ", "))
	if err != nil {
		return nil, fmt.Errorf("failed to estimate nutrition: %w", err)
	}

	confidence := estimate.Confidence
	if detectionConfidence < confidence {
		confidence = detectionConfidence
	}

	if confidence < ConfirmationThreshold {
		confirmation := models.FoodConfirmation{
			UserID:     userID,
			FoodName:   estimate.FoodName,
			Calories:   estimate.Calories,
			Protein:    estimate.Protein,
			Carbs:      estimate.Carbs,
			Fat:        estimate.Fat,
			Confidence: confidence,
			ImageURL:   imageURL,
			Status:     "pending",
		}
		if err := s.db.WithContext(ctx).Create(&confirmation).Error; err != nil {
			return nil, err
		}
		log.Printf("[AnalysisService] Held low-confidence analysis %.2f for confirmation", confidence)
		return &AnalysisResult{Confirmation: &confirmation, RequiresConfirmation: true}, nil
	}

	analysis := models.FoodAnalysis{
		UserID:      userID,
		FoodName:    estimate.FoodName,
		Calories:    estimate.Calories,
		Protein:     estimate.Protein,
		Carbs:       estimate.Carbs,
		Fat:         estimate.Fat,
		WeightGrams: estimate.WeightGrams,
		Confidence:  confidence,
		ImageURL:    imageURL,
		Source:      "photo",
	}
	if err := s.db.WithContext(ctx).Create(&analysis).Error; err != nil {
		return nil, err
	}

	return &AnalysisResult{Analysis: &analysis}, nil
}

// AnalyzeText records a nutrition analysis from a free-text description.
// The portion parser estimates the gram weight and scales the AI's per-100g
// figures to the described portion.
func (s *AnalysisService) AnalyzeText(ctx context.Context, userID uuid.UUID, description string) (*models.FoodAnalysis, error) {
	parsed := portion.Parse(description)
	grams := portion.ToGrams(description)

	subject := parsed.Ingredient
	if subject == "" {
		subject = description
	}

	estimate, err := s.ai.EstimateNutrition(ctx, "100 grams of "+subject)
	if err != nil {
		return nil, fmt.Errorf("failed to estimate nutrition: %w", err)
	}

	factor := grams / 100

	analysis := models.FoodAnalysis{
		UserID:      userID,
		FoodName:    estimate.FoodName,
		Description: description,
		Calories:    estimate.Calories * factor,
		Protein:     estimate.Protein * factor,
		Carbs:       estimate.Carbs * factor,
		Fat:         estimate.Fat * factor,
		WeightGrams: grams,
		Confidence:  estimate.Confidence,
		Source:      "text",
	}
	if err := s.db.WithContext(ctx).Create(&analysis).Error; err != nil {
		return nil, err
	}

	return &analysis, nil
}

// ListAnalyses returns the user's recent analyses, newest first.
func (s *AnalysisService) ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]models.FoodAnalysis, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var analyses []models.FoodAnalysis
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&analyses).Error
	return analyses, err
}

// ListConfirmations returns the user's pending confirmations.
func (s *AnalysisService) ListConfirmations(ctx context.Context, userID uuid.UUID) ([]models.FoodConfirmation, error) {
	var confirmations []models.FoodConfirmation
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, "pending").
		Order("created_at DESC").
		Find(&confirmations).Error
	return confirmations, err
}

// ApproveConfirmation promotes a pending confirmation to a FoodAnalysis.
func (s *AnalysisService) ApproveConfirmation(ctx context.Context, userID, confirmationID uuid.UUID) (*models.FoodAnalysis, error) {
	confirmation, err := s.getOwnedConfirmation(ctx, userID, confirmationID)
	if err != nil {
		return nil, err
	}
	if confirmation.Status != "pending" {
		return nil, errors.New("confirmation already resolved")
	}

	var analysis models.FoodAnalysis
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		analysis = models.FoodAnalysis{
			UserID:     confirmation.UserID,
			FoodName:   confirmation.FoodName,
			Calories:   confirmation.Calories,
			Protein:    confirmation.Protein,
			Carbs:      confirmation.Carbs,
			Fat:        confirmation.Fat,
			Confidence: confirmation.Confidence,
			ImageURL:   confirmation.ImageURL,
			Source:     "photo",
		}
		if err := tx.Create(&analysis).Error; err != nil {
			return err
		}

		confirmation.Status = "approved"
		return tx.Save(confirmation).Error
	})
	if err != nil {
		return nil, err
	}

	return &analysis, nil
}

// RejectConfirmation discards a pending confirmation.
func (s *AnalysisService) RejectConfirmation(ctx context.Context, userID, confirmationID uuid.UUID) error {
	confirmation, err := s.getOwnedConfirmation(ctx, userID, confirmationID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(confirmation).Error
}

func (s *AnalysisService) getOwnedConfirmation(ctx context.Context, userID, confirmationID uuid.UUID) (*models.FoodConfirmation, error) {
	var confirmation models.FoodConfirmation
	if err := s.db.WithContext(ctx).First(&confirmation, "id = ?", confirmationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if confirmation.UserID != userID {
		return nil, ErrForbidden
	}
	return &confirmation, nil
}
