package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is usable in the current
// environment. Development and test get permissive defaults; production
// requires every sensitive value to be present.
func ValidateConfig(cfg *Config) error {
	var errs []string

	if cfg.JWTSecret == "" {
		if IsProduction() {
			errs = append(errs, "jwt_secret secret or JWT_SECRET is required")
		} else {
			// Local runs still need something to sign with.
			cfg.JWTSecret = "platemate-dev-secret"
		}
	}

	if IsProduction() {
		if cfg.DBPassword == "" {
			errs = append(errs, "db_password secret or DB_PASSWORD is required")
		}
		if cfg.AIAPIKey == "" {
			errs = append(errs, "ai_api_key secret or AI_API_KEY is required")
		}
	}

	if cfg.ServerPort == "" {
		errs = append(errs, "SERVER_PORT must not be empty")
	}
	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
		errs = append(errs, "database host, port and name are required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}

	return nil
}
