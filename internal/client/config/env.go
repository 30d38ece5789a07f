package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables, loading a
// .env file from the working directory first when one exists. A missing .env
// file is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("SERVER_BASE_URL"); ok {
		cfg.ServerBaseURL = v
	}
	if v, ok := os.LookupEnv("SESSION_DB_PATH"); ok {
		cfg.SessionDBPath = v
	}
}
