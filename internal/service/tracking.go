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

// TrackingService covers the lightweight trackers: drinks, weight, steps.
type TrackingService struct {
	db *gorm.DB
}

func NewTrackingService(db *gorm.DB) *TrackingService {
	return &TrackingService{db: db}
}

func (s *TrackingService) AddDrink(ctx context.Context, userID uuid.UUID, req *types.CreateDrinkRequest) (*models.DrinkEntry, error) {
	drinkType := req.DrinkType
	if drinkType == "" {
		drinkType = "water"
	}

	entry := models.DrinkEntry{
		UserID:     userID,
		DrinkType:  drinkType,
		VolumeML:   req.VolumeML,
		ConsumedAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *TrackingService) ListDrinks(ctx context.Context, userID uuid.UUID, day time.Time) ([]models.DrinkEntry, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.Add(24 * time.Hour)

	var entries []models.DrinkEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND consumed_at >= ? AND consumed_at < ?", userID, start, end).
		Order("consumed_at DESC").
		Find(&entries).Error
	return entries, err
}

func (s *TrackingService) DeleteDrink(ctx context.Context, userID, entryID uuid.UUID) error {
	return s.deleteOwned(ctx, userID, entryID, &models.DrinkEntry{})
}

// WaterTotal sums the day's drink volume for goal progress.
func (s *TrackingService) WaterTotal(ctx context.Context, userID uuid.UUID, day time.Time) (float64, error) {
	entries, err := s.ListDrinks(ctx, userID, day)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, e := range entries {
		total += e.VolumeML
	}
	return total, nil
}

func (s *TrackingService) AddWeight(ctx context.Context, userID uuid.UUID, req *types.CreateWeightRequest) (*models.WeightEntry, error) {
	entry := models.WeightEntry{
		UserID:     userID,
		WeightKG:   req.WeightKG,
		MeasuredAt: time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *TrackingService) ListWeights(ctx context.Context, userID uuid.UUID, limit int) ([]models.WeightEntry, error) {
	if limit <= 0 || limit > 365 {
		limit = 90
	}
	var entries []models.WeightEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("measured_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (s *TrackingService) DeleteWeight(ctx context.Context, userID, entryID uuid.UUID) error {
	return s.deleteOwned(ctx, userID, entryID, &models.WeightEntry{})
}

// UpsertSteps keeps one row per user, day and source.
func (s *TrackingService) UpsertSteps(ctx context.Context, userID uuid.UUID, req *types.CreateStepsRequest) (*models.StepEntry, error) {
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, errors.New("date must be YYYY-MM-DD")
	}

	source := req.Source
	if source == "" {
		source = "manual"
	}

	var entry models.StepEntry
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND date = ? AND source = ?", userID, day, source).
		First(&entry).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry.UserID = userID
	entry.Date = day
	entry.Source = source
	entry.Count = req.Count

	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *TrackingService) ListSteps(ctx context.Context, userID uuid.UUID, day time.Time) ([]models.StepEntry, error) {
	// Step rows are keyed by UTC midnight (UpsertSteps parses the date
	// without a zone), so the caller's calendar day maps to the same key
	// regardless of the host timezone.
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	var entries []models.StepEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Find(&entries).Error
	return entries, err
}

func (s *TrackingService) DeleteSteps(ctx context.Context, userID, entryID uuid.UUID) error {
	return s.deleteOwned(ctx, userID, entryID, &models.StepEntry{})
}

// StepTotal sums the day's counts across sources.
func (s *TrackingService) StepTotal(ctx context.Context, userID uuid.UUID, day time.Time) (int, error) {
	entries, err := s.ListSteps(ctx, userID, day)
	if err != nil {
		return 0, err
	}
	var total int
	for _, e := range entries {
		total += e.Count
	}
	return total, nil
}

// deleteOwned loads dest by id, enforces ownership, then deletes it.
func (s *TrackingService) deleteOwned(ctx context.Context, userID, entryID uuid.UUID, dest interface{}) error {
	tx := s.db.WithContext(ctx)
	if err := tx.First(dest, "id = ?", entryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	owner, ok := ownerOf(dest)
	if !ok || owner != userID {
		return ErrForbidden
	}

	return tx.Delete(dest).Error
}

func ownerOf(entry interface{}) (uuid.UUID, bool) {
	switch e := entry.(type) {
	case *models.DrinkEntry:
		return e.UserID, true
	case *models.WeightEntry:
		return e.UserID, true
	case *models.StepEntry:
		return e.UserID, true
	}
	return uuid.Nil, false
}
