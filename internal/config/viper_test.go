package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 4, cfg.Pipeline.Workers)
	assert.Equal(t, 1.5, cfg.Render.Scale)
	assert.Equal(t, 150, cfg.Render.ThumbnailSize)
	assert.Equal(t, "standard", cfg.Export.Template)
	assert.Equal(t, "xlsx", cfg.Export.FileFormat)
	assert.True(t, cfg.Export.IncludeCategories)
	assert.True(t, cfg.Export.IncludeSummary)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BANKCONV_PIPELINE_WORKERS", "8")
	t.Setenv("BANKCONV_EXPORT_TEMPLATE", "accounting")

	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Pipeline.Workers)
	assert.Equal(t, "accounting", cfg.Export.Template)
}

func TestInitializeConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "BANKCONV_LOG_LEVEL", "chatty"},
		{"bad log format", "BANKCONV_LOG_FORMAT", "xml"},
		{"too many workers", "BANKCONV_PIPELINE_WORKERS", "500"},
		{"bad template", "BANKCONV_EXPORT_TEMPLATE", "fancy"},
		{"bad format", "BANKCONV_EXPORT_FILE_FORMAT", "pdf"},
		{"tiny thumbnail", "BANKCONV_RENDER_THUMBNAIL_SIZE", "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			t.Setenv(tt.key, tt.value)

			_, err := InitializeConfig()
			assert.Error(t, err)
		})
	}
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	var cfg Config
	cfg.Log.Level = "debug"
	cfg.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(&cfg)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
