package main

import (
	"flag"
	"log"

	"github.com/georgebrennan932-collab/platemate-backend-sub004/config"
	"github.com/georgebrennan932-collab/platemate-backend-sub004/internal/database"
)

func main() {
	migrationsDir := flag.String("dir", "migrations", "Directory containing SQL migration files")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, *migrationsDir); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations complete")
}
