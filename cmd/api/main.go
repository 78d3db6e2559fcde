package main

import (
	"context"
	"log"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/config"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/api"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/database"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/router"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/server"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	awsClients, err := config.NewAWSClients(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize AWS clients: %v", err)
	}

	aiService, err := service.NewAIService(cfg.AIAPIKey, cfg.AIAPIURL)
	if err != nil {
		log.Fatalf("Failed to initialize AI service: %v", err)
	}

	deps := api.Deps{
		DB:               db,
		Redis:            redisClient,
		JWTSecret:        cfg.JWTSecret,
		AI:               aiService,
		Vision:           service.NewVisionService(awsClients.Rekognition),
		Uploader:         service.NewImageService(awsClients),
		FoodFactsBaseURL: cfg.FoodFactsBaseURL,
	}

	srv := server.NewServer(router.SetupRouter(deps), cfg.ServerHost+":"+cfg.ServerPort)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
