package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresMongoURI(t *testing.T) {
	_, err := Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AQUAMETER_MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, ":8000", cfg.HTTPAddress())
	assert.Equal(t, "aquameter", cfg.Mongo.Database)
	assert.Equal(t, "users", cfg.Mongo.Collection)
	assert.Equal(t, "storage", cfg.Storage.Dir)
	assert.Equal(t, time.Hour, cfg.Alert.Window)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("AQUAMETER_MONGO_URI", "mongodb://db:27017")
	t.Setenv("AQUAMETER_HTTP_PORT", "9000")
	t.Setenv("AQUAMETER_MONGO_DB", "meters")
	t.Setenv("AQUAMETER_ALERT_WINDOW", "30m")
	t.Setenv("AQUAMETER_ALERT_WEBHOOK_URL", "https://hooks.example/abc")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTPAddress())
	assert.Equal(t, "meters", cfg.Mongo.Database)
	assert.Equal(t, 30*time.Minute, cfg.Alert.Window)
	assert.Equal(t, "https://hooks.example/abc", cfg.Alert.WebhookURL)
}

func TestLoadYAMLFileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("env: local\nhttp:\n  port: \"8100\"\nmongo:\n  uri: mongodb://file:27017\n  database: filedb\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("AQUAMETER_MONGO_DB", "envdb")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, ":8100", cfg.HTTPAddress())
	assert.Equal(t, "mongodb://file:27017", cfg.Mongo.URI)
	assert.Equal(t, "envdb", cfg.Mongo.Database, "env wins over file")
}

func TestLoadBadDuration(t *testing.T) {
	t.Setenv("AQUAMETER_MONGO_URI", "mongodb://db:27017")
	t.Setenv("AQUAMETER_ALERT_WINDOW", "soon")

	_, err := Load()
	require.Error(t, err)
}

func TestHTTPAddressNormalization(t *testing.T) {
	cfg := &Config{HTTP: HTTPConfig{Port: ":7000"}}
	assert.Equal(t, ":7000", cfg.HTTPAddress())

	cfg.HTTP.Port = ""
	assert.Equal(t, ":8000", cfg.HTTPAddress())
}
