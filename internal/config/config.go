// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the complete application configuration, resolved once at startup
// and passed in explicitly — nothing reads the environment at call time.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	AI struct {
		Model          string `mapstructure:"model" yaml:"model"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		MaxInputChars  int    `mapstructure:"max_input_chars" yaml:"max_input_chars"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ai" yaml:"ai"`

	Categorization struct {
		ConfidenceThreshold float64 `mapstructure:"confidence_threshold" yaml:"confidence_threshold"`
		KeywordOverrides    string  `mapstructure:"keyword_overrides" yaml:"keyword_overrides"`
	} `mapstructure:"categorization" yaml:"categorization"`

	Database struct {
		URL string `mapstructure:"url" yaml:"-"`
	} `mapstructure:"database" yaml:"database"`

	Server struct {
		Addr string `mapstructure:"addr" yaml:"addr"`
	} `mapstructure:"server" yaml:"server"`
}

// InitializeConfig loads configuration hierarchically: defaults, then an
// optional config file, then FINTEXT_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.fintext")
	v.AddConfigPath(".fintext")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FINTEXT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file not found is fine; a broken one is worth a warning.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// Well-known unprefixed variables.
	if err := v.BindEnv("ai.api_key", "GEMINI_API_KEY"); err != nil {
		fmt.Printf("Warning: failed to bind GEMINI_API_KEY environment variable: %v\n", err)
	}
	if err := v.BindEnv("database.url", "DATABASE_URL"); err != nil {
		fmt.Printf("Warning: failed to bind DATABASE_URL environment variable: %v\n", err)
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

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout_seconds", 30)
	v.SetDefault("ai.max_input_chars", 500)

	v.SetDefault("categorization.confidence_threshold", 0.7)
	v.SetDefault("categorization.keyword_overrides", "")

	v.SetDefault("server.addr", ":8080")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.AI.TimeoutSeconds < 1 || config.AI.TimeoutSeconds > 300 {
		return fmt.Errorf("ai.timeout_seconds must be between 1 and 300, got: %d", config.AI.TimeoutSeconds)
	}

	if config.AI.MaxInputChars < 1 || config.AI.MaxInputChars > 2000 {
		return fmt.Errorf("ai.max_input_chars must be between 1 and 2000, got: %d", config.AI.MaxInputChars)
	}

	if config.Categorization.ConfidenceThreshold < 0.0 || config.Categorization.ConfidenceThreshold > 1.0 {
		return fmt.Errorf("categorization.confidence_threshold must be between 0.0 and 1.0, got: %f",
			config.Categorization.ConfidenceThreshold)
	}

	return nil
}

// ConfigureLoggingFromConfig builds the shared logrus logger from the Config.
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
