package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Prefix namespaces every variable read by Load.
const Prefix = "QTSETUP"

// Config holds all application configuration. Sections are embedded so
// their variables sit directly under the prefix (QTSETUP_LOG_LEVEL, not
// QTSETUP_LOGCONFIG_LOG_LEVEL).
type Config struct {
	DetectConfig
	ExploreConfig
	LogConfig
	WebConfig
}

// DetectConfig controls how the platform is found and exposed.
type DetectConfig struct {
	ProcessName string `envconfig:"PROCESS_NAME" default:"Starter"`
	EnvKey      string `envconfig:"ENV_KEY" default:"QuantowerRoot"`
}

// ExploreConfig gates file-browser launches.
type ExploreConfig struct {
	Suppress bool `envconfig:"SUPPRESS_EXPLORE" default:"false"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"auto"`
}

// WebConfig holds the local web UI settings.
type WebConfig struct {
	Port string `envconfig:"WEB_PORT" default:"8080"`
}

// Load loads configuration from QTSETUP_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		DetectConfig: DetectConfig{
			ProcessName: "Starter",
			EnvKey:      "QuantowerRoot",
		},
		LogConfig: LogConfig{
			Level:  "info",
			Format: "auto",
		},
		WebConfig: WebConfig{
			Port: "8080",
		},
	}
}
