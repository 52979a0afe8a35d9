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

	Input struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"` // empty = detect
		Sheet     string `mapstructure:"sheet" yaml:"sheet"`         // XLSX sheet, empty = first
	} `mapstructure:"input" yaml:"input"`

	Mapper struct {
		Threshold      float64 `mapstructure:"threshold" yaml:"threshold"`
		MaxRowFindings int     `mapstructure:"max_row_findings" yaml:"max_row_findings"`
	} `mapstructure:"mapper" yaml:"mapper"`

	Report struct {
		FromOrgID string `mapstructure:"from_org_id" yaml:"from_org_id"`
		ToOrgID   string `mapstructure:"to_org_id" yaml:"to_org_id"`
	} `mapstructure:"report" yaml:"report"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.mifir-mapper")
	v.AddConfigPath(".mifir-mapper")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("MIFIR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Missing or invalid config file is fine, defaults and env vars apply
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

	v.SetDefault("input.delimiter", "")
	v.SetDefault("input.sheet", "")

	v.SetDefault("mapper.threshold", 0.6)
	v.SetDefault("mapper.max_row_findings", 5)

	v.SetDefault("report.from_org_id", "KD")
	v.SetDefault("report.to_org_id", "CY")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Input.Delimiter != "" && len(config.Input.Delimiter) != 1 {
		return fmt.Errorf("input delimiter must be a single character, got: %s", config.Input.Delimiter)
	}

	if config.Mapper.Threshold < 0.0 || config.Mapper.Threshold > 1.0 {
		return fmt.Errorf("mapper.threshold must be between 0.0 and 1.0, got: %f", config.Mapper.Threshold)
	}

	if config.Mapper.MaxRowFindings < 1 {
		return fmt.Errorf("mapper.max_row_findings must be at least 1, got: %d", config.Mapper.MaxRowFindings)
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
