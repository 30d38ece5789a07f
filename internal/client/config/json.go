package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/wifikeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. After parsing,
// values are copied into the runtime Config.
type JsonConfig struct {
	ServerBaseURL string `json:"server_base_url"`
	SessionDBPath string `json:"session_db_path"`
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

	var jsonConfig JsonConfig
	if err := json.Unmarshal(data, &jsonConfig); err != nil {
		panic(err)
	}

	if jsonConfig.ServerBaseURL != "" {
		cfg.ServerBaseURL = jsonConfig.ServerBaseURL
	}
	if jsonConfig.SessionDBPath != "" {
		cfg.SessionDBPath = jsonConfig.SessionDBPath
	}
}
