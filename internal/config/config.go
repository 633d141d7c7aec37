package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the full service configuration, sourced from environment
// variables (optionally via a .env file).
type Config struct {
	Port      string
	MongoURI  string
	MongoDB   string
	RedisAddr string
	JWTSecret string

	// WeeklyGoal is the dashboard target shown to every user; it is a
	// display constant, not derived from the data.
	WeeklyGoal int

	// AIProvider names the registered LLM backend for explanations.
	AIProvider string

	// ABSummarySchedule is the cron expression for the exposure
	// summary job; empty disables it.
	ABSummarySchedule string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	// .env is a developer convenience; absence is fine
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnvOrDefault("PORT", "8080"),
		MongoURI:          os.Getenv("MONGO_URI"),
		MongoDB:           getEnvOrDefault("MONGO_DB_NAME", "dsatrack"),
		RedisAddr:         getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		WeeklyGoal:        getEnvIntOrDefault("WEEKLY_GOAL", 100),
		AIProvider:        getEnvOrDefault("AI_PROVIDER", "gemini"),
		ABSummarySchedule: getEnvOrDefault("AB_SUMMARY_SCHEDULE", "0 2 * * *"),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
