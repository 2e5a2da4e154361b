// Package config loads CLI configuration from the environment and an
// optional .env file
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	"github.com/KirkDiggler/rpg-inventory/internal/logger"
)

// Environment variable names
const (
	EnvInventoryFile = "INVENTORY_FILE"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvMetricsFile   = "METRICS_FILE"
)

// DefaultInventoryFile is used when INVENTORY_FILE is unset
const DefaultInventoryFile = "inventory.json"

// Config holds the CLI configuration
type Config struct {
	InventoryFile string
	LogLevel      string
	LogFormat     string
	// MetricsFile is optional; metrics are only written when it is set
	MetricsFile string
}

// Load reads configuration from the environment. Variables already set in
// the environment win over the env files. With no files, a .env in the
// working directory is read if present; named files must exist.
// The result is not validated; apply any overrides, then call Validate.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, errors.IOFailuref(err, "failed to load env files %s", strings.Join(envFiles, ", "))
	}

	cfg := &Config{
		InventoryFile: getEnv(EnvInventoryFile, DefaultInventoryFile),
		LogLevel:      strings.ToLower(getEnv(EnvLogLevel, logger.LevelInfo)),
		LogFormat:     strings.ToLower(getEnv(EnvLogFormat, logger.FormatText)),
		MetricsFile:   getEnv(EnvMetricsFile, ""),
	}
	return cfg, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired(EnvInventoryFile, c.InventoryFile, vb)
	errors.ValidateEnum(EnvLogLevel, c.LogLevel, []string{
		logger.LevelDebug, logger.LevelInfo, logger.LevelWarn, logger.LevelWarning, logger.LevelError,
	}, vb)
	errors.ValidateEnum(EnvLogFormat, c.LogFormat, []string{logger.FormatText, logger.FormatJSON}, vb)

	return vb.Build()
}

// Logger returns the logger configuration
func (c *Config) Logger() logger.Config {
	return logger.Config{
		Level:  c.LogLevel,
		Format: c.LogFormat,
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
