// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Pipeline struct {
		Workers int `mapstructure:"workers" yaml:"workers"`
	} `mapstructure:"pipeline" yaml:"pipeline"`

	Render struct {
		Scale         float64 `mapstructure:"scale" yaml:"scale"`
		ThumbnailSize int     `mapstructure:"thumbnail_size" yaml:"thumbnail_size"`
	} `mapstructure:"render" yaml:"render"`

	Categories struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"categories" yaml:"categories"`

	Export struct {
		Template          string `mapstructure:"template" yaml:"template"`
		FileFormat        string `mapstructure:"file_format" yaml:"file_format"`
		IncludeCategories bool   `mapstructure:"include_categories" yaml:"include_categories"`
		IncludeSummary    bool   `mapstructure:"include_summary" yaml:"include_summary"`
	} `mapstructure:"export" yaml:"export"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then BANKCONV_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.bankstatementconvertor")
	v.AddConfigPath(".bankstatementconvertor")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BANKCONV")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("pipeline.workers", 4)

	v.SetDefault("render.scale", 1.5)
	v.SetDefault("render.thumbnail_size", 150)

	v.SetDefault("categories.file", "")

	v.SetDefault("export.template", "standard")
	v.SetDefault("export.file_format", "xlsx")
	v.SetDefault("export.include_categories", true)
	v.SetDefault("export.include_summary", true)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Pipeline.Workers < 1 || config.Pipeline.Workers > 64 {
		return fmt.Errorf("pipeline.workers must be between 1 and 64, got: %d", config.Pipeline.Workers)
	}

	if config.Render.Scale <= 0 || config.Render.Scale > 8 {
		return fmt.Errorf("render.scale must be between 0 and 8, got: %f", config.Render.Scale)
	}

	if config.Render.ThumbnailSize < 16 || config.Render.ThumbnailSize > 1024 {
		return fmt.Errorf("render.thumbnail_size must be between 16 and 1024, got: %d", config.Render.ThumbnailSize)
	}

	switch config.Export.Template {
	case "standard", "financial", "accounting", "tax":
	default:
		return fmt.Errorf("invalid export template: %s", config.Export.Template)
	}

	switch config.Export.FileFormat {
	case "xlsx", "csv", "xls":
	default:
		return fmt.Errorf("invalid export file format: %s", config.Export.FileFormat)
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
