// Package config loads and validates jarwise configuration from viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/jarwise/internal/common"
	"github.com/Veraticus/jarwise/internal/model"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyDatabasePath  = "database.path"
	KeyHorizonDays   = "analysis.horizon_days"
	KeyForecastDays  = "analysis.forecast_days"
	KeyRules         = "classifier.rules"
	KeyLogLevel      = "logging.level"
	KeyLogFormat     = "logging.format"
	DefaultDatabase  = "~/.local/share/jarwise/jarwise.db"
	defaultHorizon   = 7
	defaultForecast  = 7
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// Config is the resolved application configuration.
type Config struct {
	DatabasePath string
	LogLevel     string
	LogFormat    string
	Rules        []model.CategoryRule
	HorizonDays  int
	ForecastDays int
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, DefaultDatabase)
	v.SetDefault(KeyHorizonDays, defaultHorizon)
	v.SetDefault(KeyForecastDays, defaultForecast)
	v.SetDefault(KeyLogLevel, defaultLogLevel)
	v.SetDefault(KeyLogFormat, defaultLogFormat)
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabasePath: ExpandPath(v.GetString(KeyDatabasePath)),
		HorizonDays:  v.GetInt(KeyHorizonDays),
		ForecastDays: v.GetInt(KeyForecastDays),
		LogLevel:     v.GetString(KeyLogLevel),
		LogFormat:    v.GetString(KeyLogFormat),
	}

	if err := v.UnmarshalKey(KeyRules, &cfg.Rules); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrInvalidConfig, KeyRules, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DatabasePath) == "" {
		return fmt.Errorf("%w: %s is empty", common.ErrInvalidConfig, KeyDatabasePath)
	}
	if c.HorizonDays <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", common.ErrInvalidConfig, KeyHorizonDays, c.HorizonDays)
	}
	if c.ForecastDays <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", common.ErrInvalidConfig, KeyForecastDays, c.ForecastDays)
	}
	for i, rule := range c.Rules {
		if err := rule.Validate(); err != nil {
			return fmt.Errorf("%w: %s[%d]: %w", common.ErrInvalidConfig, KeyRules, i, err)
		}
	}
	return nil
}

// ExpandPath expands a leading ~ and $VAR references in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}
