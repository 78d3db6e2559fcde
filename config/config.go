package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the PlateMate API.
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// AWS configuration (S3 photo storage, Rekognition labels)
	AWSRegion string
	S3Bucket  string

	// Nutrition AI provider
	AIAPIKey string
	AIAPIURL string

	// Open Food Facts
	FoodFactsBaseURL string
}

// LoadConfig builds a Config from the environment. In development a .env
// file is loaded first; in production sensitive values come from Docker
// secrets and fall back to environment variables.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	if env == Development {
		// Missing .env is fine, plain env vars still apply.
		_ = godotenv.Load()
	}

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "platemate"),
		DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisURL:      os.Getenv("REDIS_URL"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		AWSRegion: getEnv("AWS_REGION", "us-east-1"),
		S3Bucket:  getEnv("S3_BUCKET_NAME", "platemate-meal-photos"),

		AIAPIKey: os.Getenv("AI_API_KEY"),
		AIAPIURL: getEnv("AI_API_URL", "https://api.deepseek.com/v1/chat/completions"),

		FoodFactsBaseURL: getEnv("FOOD_FACTS_BASE_URL", "https://world.openfoodfacts.org"),
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	// Docker secrets override environment in production.
	if env == Production {
		overrideFromSecret(&cfg.DBPassword, "db_password")
		overrideFromSecret(&cfg.RedisPassword, "redis_password")
		overrideFromSecret(&cfg.JWTSecret, "jwt_secret")
		overrideFromSecret(&cfg.AIAPIKey, "ai_api_key")
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// getEnv reads an environment variable with a default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// overrideFromSecret replaces dst with the Docker secret value when present.
func overrideFromSecret(dst *string, name string) {
	if v := readSecret(name); v != "" {
		*dst = v
	}
}

// readSecret reads a Docker secret from the secrets directory.
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
