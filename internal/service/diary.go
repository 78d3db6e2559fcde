package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/models"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/types"
)

// ScaledNutrition is an analysis's nutrition after applying the entry's
// portion multiplier.
type ScaledNutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DiaryEntryView is a diary entry with its scaled nutrition attached.
type DiaryEntryView struct {
	models.DiaryEntry
	Nutrition ScaledNutrition `json:"nutrition"`
}

// DiaryService manages meal diary entries.
type DiaryService struct {
	db *gorm.DB
}

func NewDiaryService(db *gorm.DB) *DiaryService {
	return &DiaryService{db: db}
}

// CreateEntry logs a meal against one of the user's food analyses.
func (s *DiaryService) CreateEntry(ctx context.Context, userID uuid.UUID, req *types.CreateDiaryEntryRequest) (*DiaryEntryView, error) {
	var analysis models.FoodAnalysis
	if err := s.db.WithContext(ctx).First(&analysis, "id = ?", req.AnalysisID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if analysis.UserID != userID {
		return nil, ErrForbidden
	}

	consumedAt := time.Now()
	if req.ConsumedAt != "" {
		t, err := time.Parse(time.RFC3339, req.ConsumedAt)
		if err != nil {
			return nil, errors.New("consumed_at must be RFC3339")
		}
		consumedAt = t
	}

	entry := models.DiaryEntry{
		UserID:            userID,
		AnalysisID:        analysis.ID,
		MealType:          req.MealType,
		PortionMultiplier: req.PortionMultiplier,
		Notes:             req.Notes,
		ConsumedAt:        consumedAt,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	entry.Analysis = &analysis

	view := scaleEntry(entry)
	return &view, nil
}

// ListEntries returns the user's entries for one day, newest first.
func (s *DiaryService) ListEntries(ctx context.Context, userID uuid.UUID, day time.Time) ([]DiaryEntryView, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var entries []models.DiaryEntry
	if err := s.db.WithContext(ctx).
		Preload("Analysis").
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, start, end).
		Order("consumed_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}

	views := make([]DiaryEntryView, len(entries))
	for i, e := range entries {
		views[i] = scaleEntry(e)
	}
	return views, nil
}

// UpdateEntry patches multiplier, notes or meal type on an owned entry.
func (s *DiaryService) UpdateEntry(ctx context.Context, userID, entryID uuid.UUID, req *types.UpdateDiaryEntryRequest) (*DiaryEntryView, error) {
	entry, err := s.getOwned(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.MealType != nil {
		entry.MealType = *req.MealType
	}
	if req.PortionMultiplier != nil {
		entry.PortionMultiplier = *req.PortionMultiplier
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}

	if err := s.db.WithContext(ctx).Save(entry).Error; err != nil {
		return nil, err
	}

	view := scaleEntry(*entry)
	return &view, nil
}

// DeleteEntry removes an owned entry.
func (s *DiaryService) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	entry, err := s.getOwned(ctx, userID, entryID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(entry).Error
}

// DayTotals sums the scaled nutrition for one day; the coach reads this.
func (s *DiaryService) DayTotals(ctx context.Context, userID uuid.UUID, day time.Time) (ScaledNutrition, error) {
	entries, err := s.ListEntries(ctx, userID, day)
	if err != nil {
		return ScaledNutrition{}, err
	}

	var totals ScaledNutrition
	for _, e := range entries {
		totals.Calories += e.Nutrition.Calories
		totals.Protein += e.Nutrition.Protein
		totals.Carbs += e.Nutrition.Carbs
		totals.Fat += e.Nutrition.Fat
	}
	return totals, nil
}

func (s *DiaryService) getOwned(ctx context.Context, userID, entryID uuid.UUID) (*models.DiaryEntry, error) {
	var entry models.DiaryEntry
	if err := s.db.WithContext(ctx).Preload("Analysis").First(&entry, "id = ?", entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if entry.UserID != userID {
		return nil, ErrForbidden
	}
	return &entry, nil
}

func scaleEntry(entry models.DiaryEntry) DiaryEntryView {
	view := DiaryEntryView{DiaryEntry: entry}
	if entry.Analysis == nil {
		return view
	}

	factor := float64(entry.PortionMultiplier) / 100
	view.Nutrition = ScaledNutrition{
		Calories: entry.Analysis.Calories * factor,
		Protein:  entry.Analysis.Protein * factor,
		Carbs:    entry.Analysis.Carbs * factor,
		Fat:      entry.Analysis.Fat * factor,
	}
	return view
}
