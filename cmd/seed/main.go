package main

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/config"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/database"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/models"
)

// catalog is the default set of challenges. Seeding is idempotent; existing
// challenges are matched by name and left untouched.
var catalog = []models.Challenge{
	{
		Name:         "Hydration Week",
		Description:  "Drink 2 liters of water every day for a week.",
		Metric:       "water_ml",
		Target:       14000,
		DurationDays: 7,
	},
	{
		Name:         "Protein Push",
		Description:  "Hit your protein goal five days in a row.",
		Metric:       "protein_days",
		Target:       5,
		DurationDays: 7,
	},
	{
		Name:         "Step It Up",
		Description:  "Walk 70,000 steps in a week.",
		Metric:       "steps",
		Target:       70000,
		DurationDays: 7,
	},
	{
		Name:         "Veggie Streak",
		Description:  "Log a vegetable with every dinner for ten days.",
		Metric:       "veggie_meals",
		Target:       10,
		DurationDays: 10,
	},
	{
		Name:         "Photo Habit",
		Description:  "Analyze a photo of every lunch for two weeks.",
		Metric:       "photo_analyses",
		Target:       14,
		DurationDays: 14,
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seeded := 0
	for _, challenge := range catalog {
		var existing models.Challenge
		err := db.Where("name = ?", challenge.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check challenge %q: %v", challenge.Name, err)
		}

		if err := db.Create(&challenge).Error; err != nil {
			log.Fatalf("Failed to seed challenge %q: %v", challenge.Name, err)
		}
		seeded++
	}

	log.Printf("Seeded %d challenges (%d already present)", seeded, len(catalog)-seeded)
}
