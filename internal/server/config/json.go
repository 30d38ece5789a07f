package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/wifikeeper/internal/flagx"
	"github.com/dmitrijs2005/wifikeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It uses
// timex.Duration so durations can be given either as strings like "24h" or
// as integer nanoseconds. After parsing, values are copied into the runtime
// Config.
type JsonConfig struct {
	Address               string         `json:"address"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	EncryptionKey         string         `json:"encryption_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags; when neither is given the function
// is a no-op. Read or unmarshal errors panic, startup configuration must be
// either absent or valid.
func parseJson(cfg *Config) {
	fileName := flagx.JsonConfigFlags()
	if fileName == "" {
		return
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	if c.Address != "" {
		cfg.Address = c.Address
	}
	if c.DatabaseDSN != "" {
		cfg.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		cfg.SecretKey = c.SecretKey
	}
	if c.EncryptionKey != "" {
		cfg.EncryptionKey = c.EncryptionKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		cfg.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
}
