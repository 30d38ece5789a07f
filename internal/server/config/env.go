package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables, seeding
// them from a .env file in the working directory when one exists.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("ADDRESS"); ok {
		cfg.Address = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		cfg.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		cfg.SecretKey = v
	}
	if v, ok := os.LookupEnv("ENCRYPTION_KEY"); ok {
		cfg.EncryptionKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY_DURATION"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TokenValidityDuration = d
		}
	}
}
