package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	YouTubeAPIKey string
	RedisURL      string
	LogLevel      string
	Environment   string
	CORSOrigins   string
}

// Load reads configuration from the environment, with a .env file as a
// development convenience. The API key has no default on purpose.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		YouTubeAPIKey: os.Getenv("YOUTUBE_API_KEY"),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
