package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds every configuration variable the application reads.
type AppConfig struct {
	Port         string
	Env          string
	DatabaseURL  string
	DatabaseName string
}

// Load reads configuration from a .env file or environment variables.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using environment variables")
	}

	return &AppConfig{
		Port:         getEnv("PORT", "8000"),
		Env:          getEnv("ENVIRONMENT", "development"),
		DatabaseURL:  getEnv("DATABASE_URL", "mongodb://localhost:27017"),
		DatabaseName: getEnv("DATABASE_NAME", "zele"),
	}
}

// DatabaseURLSet reports whether DATABASE_URL came from the environment.
// The health report needs the presence flag without echoing the value.
func (c *AppConfig) DatabaseURLSet() bool {
	_, ok := os.LookupEnv("DATABASE_URL")
	return ok
}

// DatabaseNameSet reports whether DATABASE_NAME came from the environment.
func (c *AppConfig) DatabaseNameSet() bool {
	_, ok := os.LookupEnv("DATABASE_NAME")
	return ok
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
