package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file. A missing config file is not an
// error unless an explicit path was given; defaults cover every setting.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".hellodash"))
		}

		// Check /etc
		v.AddConfigPath("/etc/hellodash/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && configPath == "" {
			// run on defaults
		} else {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// TMDB defaults
	v.SetDefault("tmdb.url", "https://api.themoviedb.org/3")

	// OpenAI defaults
	v.SetDefault("openai.url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("openai.temperature", 0.7)
	v.SetDefault("openai.max_tokens", 1000)
	v.SetDefault("openai.system_message", "You are a helpful AI assistant. Be concise and helpful in your responses.")

	// Cache defaults
	v.SetDefault("cache.ttl_seconds", 300)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.TMDB.URL == "" {
		return fmt.Errorf("tmdb.url is required")
	}

	if cfg.OpenAI.URL == "" {
		return fmt.Errorf("openai.url is required")
	}

	if cfg.OpenAI.Temperature < 0 || cfg.OpenAI.Temperature > 2 {
		return fmt.Errorf("openai.temperature must be between 0 and 2, got %v", cfg.OpenAI.Temperature)
	}

	if cfg.OpenAI.MaxTokens < 0 {
		return fmt.Errorf("openai.max_tokens must not be negative, got %d", cfg.OpenAI.MaxTokens)
	}

	if cfg.Cache.TTLSeconds <= 0 {
		return fmt.Errorf("cache.ttl_seconds must be positive, got %d", cfg.Cache.TTLSeconds)
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
