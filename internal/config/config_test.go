package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	assert.Equal(t, "info", v.GetString("log.level"))
	assert.Equal(t, "text", v.GetString("log.format"))
	assert.Equal(t, "gemini-2.0-flash", v.GetString("ai.model"))
	assert.Equal(t, 30, v.GetInt("ai.timeout_seconds"))
	assert.Equal(t, 500, v.GetInt("ai.max_input_chars"))
	assert.Equal(t, 0.7, v.GetFloat64("categorization.confidence_threshold"))
	assert.Equal(t, ":8080", v.GetString("server.addr"))
}

func validBase() *Config {
	var c Config
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.AI.TimeoutSeconds = 30
	c.AI.MaxInputChars = 500
	c.Categorization.ConfidenceThreshold = 0.7
	return &c
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config passes",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: "log level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: "log format",
		},
		{
			name:    "timeout too small",
			mutate:  func(c *Config) { c.AI.TimeoutSeconds = 0 },
			wantErr: "timeout_seconds",
		},
		{
			name:    "timeout too large",
			mutate:  func(c *Config) { c.AI.TimeoutSeconds = 301 },
			wantErr: "timeout_seconds",
		},
		{
			name:    "max input chars too small",
			mutate:  func(c *Config) { c.AI.MaxInputChars = 0 },
			wantErr: "max_input_chars",
		},
		{
			name:    "max input chars too large",
			mutate:  func(c *Config) { c.AI.MaxInputChars = 2001 },
			wantErr: "max_input_chars",
		},
		{
			name:    "threshold below zero",
			mutate:  func(c *Config) { c.Categorization.ConfidenceThreshold = -0.1 },
			wantErr: "confidence_threshold",
		},
		{
			name:    "threshold above one",
			mutate:  func(c *Config) { c.Categorization.ConfidenceThreshold = 1.1 },
			wantErr: "confidence_threshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validBase()
			tt.mutate(c)
			err := validateConfig(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

// Threshold bounds are inclusive: 0 means commit everything, 1 means confirm
// everything.
func TestValidateConfig_ThresholdBoundsInclusive(t *testing.T) {
	c := validBase()
	c.Categorization.ConfidenceThreshold = 0.0
	assert.NoError(t, validateConfig(c))

	c.Categorization.ConfidenceThreshold = 1.0
	assert.NoError(t, validateConfig(c))
}

func TestConfigureLoggingFromConfig(t *testing.T) {
	c := validBase()
	c.Log.Level = "debug"
	c.Log.Format = "json"

	logger := ConfigureLoggingFromConfig(c)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	c.Log.Format = "text"
	logger = ConfigureLoggingFromConfig(c)
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)
}

func TestInitializeConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FINTEXT_AI_TIMEOUT_SECONDS", "10")
	t.Setenv("FINTEXT_CATEGORIZATION_CONFIDENCE_THRESHOLD", "0.5")
	t.Setenv("GEMINI_API_KEY", "test-key")

	c, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, 10, c.AI.TimeoutSeconds)
	assert.Equal(t, 0.5, c.Categorization.ConfidenceThreshold)
	assert.Equal(t, "test-key", c.AI.APIKey)
}
