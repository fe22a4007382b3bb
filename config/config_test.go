package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{URL: "https://api.themoviedb.org/3"},
		OpenAI: OpenAIConfig{
			URL:         "https://api.openai.com/v1",
			Model:       "gpt-3.5-turbo",
			Temperature: 0.7,
			MaxTokens:   1000,
		},
		Cache: CacheConfig{TTLSeconds: 300},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing tmdb url",
			mutate:  func(c *Config) { c.TMDB.URL = "" },
			wantErr: true,
		},
		{
			name:    "missing openai url",
			mutate:  func(c *Config) { c.OpenAI.URL = "" },
			wantErr: true,
		},
		{
			name:    "temperature too high",
			mutate:  func(c *Config) { c.OpenAI.Temperature = 2.5 },
			wantErr: true,
		},
		{
			name:    "temperature negative",
			mutate:  func(c *Config) { c.OpenAI.Temperature = -0.1 },
			wantErr: true,
		},
		{
			name:    "negative max tokens",
			mutate:  func(c *Config) { c.OpenAI.MaxTokens = -1 },
			wantErr: true,
		},
		{
			name:    "zero cache ttl",
			mutate:  func(c *Config) { c.Cache.TTLSeconds = 0 },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(orig)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() with no config file should fall back to defaults, got error: %v", err)
	}

	if cfg.TMDB.URL != "https://api.themoviedb.org/3" {
		t.Errorf("tmdb.url default = %q", cfg.TMDB.URL)
	}
	if cfg.OpenAI.Model != "gpt-3.5-turbo" {
		t.Errorf("openai.model default = %q", cfg.OpenAI.Model)
	}
	if cfg.Cache.TTLSeconds != 300 {
		t.Errorf("cache.ttl_seconds default = %d", cfg.Cache.TTLSeconds)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Errorf("logging defaults = %q/%q", cfg.Logging.Level, cfg.Logging.Format)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
openai:
  model: gpt-4
  temperature: 0.2
cache:
  ttl_seconds: 60
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OpenAI.Model != "gpt-4" {
		t.Errorf("openai.model = %q, want gpt-4", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.Temperature != 0.2 {
		t.Errorf("openai.temperature = %v, want 0.2", cfg.OpenAI.Temperature)
	}
	if cfg.Cache.TTLSeconds != 60 {
		t.Errorf("cache.ttl_seconds = %d, want 60", cfg.Cache.TTLSeconds)
	}
	// Unset keys keep their defaults.
	if cfg.TMDB.URL != "https://api.themoviedb.org/3" {
		t.Errorf("tmdb.url = %q, want default", cfg.TMDB.URL)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	if err == nil {
		t.Fatal("Load() with an explicit missing path should fail")
	}
}
