// Package config loads runtime configuration for the WifiKeeper CLI.
//
// Sources and precedence, later sources override earlier ones:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags.
package config

// Config holds runtime settings for the WifiKeeper CLI.
type Config struct {
	// ServerBaseURL is the backend API prefix, including the /api segment.
	ServerBaseURL string
	// SessionDBPath is the path of the local session database file.
	SessionDBPath string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080/api"
	c.SessionDBPath = "session.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
