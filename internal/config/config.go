package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// HTTPConfig holds listener settings.
type HTTPConfig struct {
	Port string `yaml:"port" env:"AQUAMETER_HTTP_PORT"`
}

// MongoConfig holds document-store connection settings.
type MongoConfig struct {
	URI        string `yaml:"uri" env:"AQUAMETER_MONGO_URI"`
	Database   string `yaml:"database" env:"AQUAMETER_MONGO_DB"`
	Collection string `yaml:"collection" env:"AQUAMETER_MONGO_COLLECTION"`
}

// StorageConfig holds the local image storage area.
type StorageConfig struct {
	Dir string `yaml:"dir" env:"AQUAMETER_STORAGE_DIR"`
}

// AlertConfig controls the outbound webhook sink for warn+ log entries.
// An empty URL disables alerting entirely.
type AlertConfig struct {
	WebhookURL string        `yaml:"webhook_url" env:"AQUAMETER_ALERT_WEBHOOK_URL"`
	Prefix     string        `yaml:"prefix" env:"AQUAMETER_ALERT_PREFIX"`
	Window     time.Duration `yaml:"window" env:"AQUAMETER_ALERT_WINDOW"`
}

// Config defines meter backend configuration.
type Config struct {
	Env     string        `yaml:"env" env:"AQUAMETER_ENV"`
	HTTP    HTTPConfig    `yaml:"http"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Storage StorageConfig `yaml:"storage"`
	Alert   AlertConfig   `yaml:"alert"`
}

// Load configuration from file/env.
func Load() (*Config, error) {
	cfg := &Config{
		Env:  "production",
		HTTP: HTTPConfig{Port: "8000"},
		Mongo: MongoConfig{
			Database:   "aquameter",
			Collection: "users",
		},
		Storage: StorageConfig{Dir: "storage"},
		Alert:   AlertConfig{Prefix: "aquameter", Window: time.Hour},
	}

	if err := hydrate(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Mongo.URI) == "" {
		return nil, errors.New("config: mongo uri required")
	}
	if cfg.Alert.Window <= 0 {
		cfg.Alert.Window = time.Hour
	}
	return cfg, nil
}

// HTTPAddress returns :port style string.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8000"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
