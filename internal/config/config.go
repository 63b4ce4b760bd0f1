package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
// Precedence order: config file values, then environment variables
// (JOBTAILOR_APP_LOGLEVEL, etc.), then defaults.
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Data   DataConfig   `mapstructure:"data"`
	Tailor TailorConfig `mapstructure:"tailor"`
}

// AppConfig holds general application configuration
type AppConfig struct {
	LogLevel         string   `mapstructure:"logLevel"`
	DefaultFormat    string   `mapstructure:"defaultFormat"`
	SupportedFormats []string `mapstructure:"supportedFormats"`
	MaxFileSize      int64    `mapstructure:"maxFileSize"`
}

// DataConfig holds the job dataset location. An empty path means the dataset
// embedded in the binary.
type DataConfig struct {
	Path string `mapstructure:"path"`
}

// TailorConfig holds resume tailoring policy
type TailorConfig struct {
	MaxHighlights     int    `mapstructure:"maxHighlights"`
	SummaryHeading    string `mapstructure:"summaryHeading"`
	HighlightsHeading string `mapstructure:"highlightsHeading"`
	SkillsHeading     string `mapstructure:"skillsHeading"`
}

// LoadConfig reads configuration from defaults, an optional config file, and
// environment variables.
func LoadConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("JOBTAILOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/jobtailor/")
	v.AddConfigPath("$HOME/.jobtailor")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the loaded configuration for values the tool cannot run
// with.
func (c *Config) Validate() error {
	switch c.App.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", c.App.LogLevel)
	}

	if len(c.App.SupportedFormats) > 0 && !slices.Contains(c.App.SupportedFormats, c.App.DefaultFormat) {
		return fmt.Errorf("default format %q is not among supported formats %v",
			c.App.DefaultFormat, c.App.SupportedFormats)
	}

	if c.Tailor.MaxHighlights < 1 {
		return fmt.Errorf("tailor.maxHighlights must be at least 1, got %d", c.Tailor.MaxHighlights)
	}
	for name, heading := range map[string]string{
		"tailor.summaryHeading":    c.Tailor.SummaryHeading,
		"tailor.highlightsHeading": c.Tailor.HighlightsHeading,
		"tailor.skillsHeading":     c.Tailor.SkillsHeading,
	} {
		if strings.TrimSpace(heading) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}

	return nil
}
