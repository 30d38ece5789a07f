package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.Address)
	assert.Equal(t, 24*time.Hour, c.TokenValidityDuration)
	assert.Len(t, c.EncryptionKey, 32)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("ADDRESS", ":9090")
	t.Setenv("DATABASE_DSN", "postgres://u:p@db:5432/wk")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("TOKEN_VALIDITY_DURATION", "1h")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":9090", c.Address)
	assert.Equal(t, "postgres://u:p@db:5432/wk", c.DatabaseDSN)
	assert.Equal(t, "env-secret", c.SecretKey)
	assert.Equal(t, time.Hour, c.TokenValidityDuration)
}

func TestParseFlags(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd", "-a", ":7070", "-d", "postgres://flag", "-k", "flag-secret"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":7070", c.Address)
	assert.Equal(t, "postgres://flag", c.DatabaseDSN)
	assert.Equal(t, "flag-secret", c.SecretKey)
}

func TestParseJson(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(fileName, []byte(`{
		"address": ":6060",
		"secret_key": "json-secret",
		"token_validity_duration": "12h"
	}`), 0o600))

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"cmd", "-config", fileName}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":6060", c.Address)
	assert.Equal(t, "json-secret", c.SecretKey)
	assert.Equal(t, 12*time.Hour, c.TokenValidityDuration)
	// untouched fields keep their defaults
	assert.Len(t, c.EncryptionKey, 32)
}
