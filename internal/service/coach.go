package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/models"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/types"
)

// DailyCoaching is the coach's daily output with the numbers it was based on.
type DailyCoaching struct {
	Advice    string                `json:"advice"`
	Date      string                `json:"date"`
	Totals    ScaledNutrition       `json:"totals"`
	WaterML   float64               `json:"water_ml"`
	Steps     int                   `json:"steps"`
	Goals     *models.NutritionGoal `json:"goals,omitempty"`
	FromCache bool                  `json:"from_cache"`
}

// CoachService generates a daily advice message from the day's intake,
// the user's goals and a rolling memory of previous days. Advice is
// generated once per user per day; Redis holds the day's copy.
type CoachService struct {
	db       *gorm.DB
	redis    *redis.Client
	ai       NutritionAI
	diary    *DiaryService
	tracking *TrackingService
	goals    *GoalsService
}

func NewCoachService(db *gorm.DB, redisClient *redis.Client, ai NutritionAI, diary *DiaryService, tracking *TrackingService, goals *GoalsService) *CoachService {
	return &CoachService{
		db:       db,
		redis:    redisClient,
		ai:       ai,
		diary:    diary,
		tracking: tracking,
		goals:    goals,
	}
}

// DailyAdvice returns today's coaching message, generating it on the first
// call of the day.
func (s *CoachService) DailyAdvice(ctx context.Context, userID uuid.UUID) (*DailyCoaching, error) {
	now := time.Now()
	dateStr := now.Format("2006-01-02")

	coaching, err := s.buildDay(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	coaching.Date = dateStr

	cacheKey := fmt.Sprintf("coach:advice:%s:%s", userID, dateStr)
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			coaching.Advice = cached
			coaching.FromCache = true
			return coaching, nil
		}
	}

	memory, err := s.loadMemory(ctx, userID)
	if err != nil {
		return nil, err
	}

	prompt := s.buildPrompt(coaching, memory)
	raw, err := s.ai.DailyAdvice(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate advice: %w", err)
	}

	var parsed struct {
		Advice  string `json:"advice"`
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse advice: %w", err)
	}
	if parsed.Advice == "" {
		return nil, errors.New("empty advice from AI")
	}

	if err := s.saveMemory(ctx, memory, parsed.Summary, parsed.Advice); err != nil {
		log.Printf("[CoachService] Failed to save coach memory: %v", err)
	}

	if s.redis != nil {
		if err := s.redis.Set(ctx, cacheKey, parsed.Advice, 24*time.Hour).Err(); err != nil {
			log.Printf("[CoachService] Failed to cache advice: %v", err)
		}
	}

	coaching.Advice = parsed.Advice
	return coaching, nil
}

func (s *CoachService) buildDay(ctx context.Context, userID uuid.UUID, day time.Time) (*DailyCoaching, error) {
	totals, err := s.diary.DayTotals(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	water, err := s.tracking.WaterTotal(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	steps, err := s.tracking.StepTotal(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	coaching := &DailyCoaching{
		Totals:  totals,
		WaterML: water,
		Steps:   steps,
	}

	goals, err := s.goals.GetGoals(ctx, userID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	coaching.Goals = goals

	return coaching, nil
}

func (s *CoachService) buildPrompt(day *DailyCoaching, memory *models.AICoachMemory) string {
	prompt := fmt.Sprintf("Today so far: %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat, %.0fml water, %d steps.",
		day.Totals.Calories, day.Totals.Protein, day.Totals.Carbs, day.Totals.Fat, day.WaterML, day.Steps)

	if day.Goals != nil {
		prompt += fmt.Sprintf(" Daily goals: %.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat, %.0fml water, %d steps.",
			day.Goals.Calories, day.Goals.Protein, day.Goals.Carbs, day.Goals.Fat, day.Goals.WaterML, day.Goals.StepTarget)
	} else {
		prompt += " The user has not set goals yet."
	}

	if memory.Summary != "" {
		prompt += " Previous notes about this user: " + memory.Summary
	}

	return prompt
}

func (s *CoachService) loadMemory(ctx context.Context, userID uuid.UUID) (*models.AICoachMemory, error) {
	var memory models.AICoachMemory
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&memory).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	memory.UserID = userID
	return &memory, nil
}

func (s *CoachService) saveMemory(ctx context.Context, memory *models.AICoachMemory, summary, advice string) error {
	if summary != "" {
		memory.Summary = summary
	}
	memory.LastAdvice = advice
	return s.db.WithContext(ctx).Save(memory).Error
}

// CreateReflection records a journal note.
func (s *CoachService) CreateReflection(ctx context.Context, userID uuid.UUID, req *types.CreateReflectionRequest) (*models.Reflection, error) {
	reflection := models.Reflection{
		UserID:  userID,
		Mood:    req.Mood,
		Content: req.Content,
	}
	if err := s.db.WithContext(ctx).Create(&reflection).Error; err != nil {
		return nil, err
	}
	return &reflection, nil
}

// ListReflections returns the user's recent reflections, newest first.
func (s *CoachService) ListReflections(ctx context.Context, userID uuid.UUID, limit int) ([]models.Reflection, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	var reflections []models.Reflection
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&reflections).Error
	return reflections, err
}
