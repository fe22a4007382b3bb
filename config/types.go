package config

// Config represents the complete configuration structure. API keys are not
// part of it; credentials come from the environment or an interactive prompt.
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	OpenAI  OpenAIConfig  `mapstructure:"openai"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds TMDB connection details.
type TMDBConfig struct {
	URL string `mapstructure:"url"`
}

// OpenAIConfig holds OpenAI connection details and chat defaults.
type OpenAIConfig struct {
	URL           string  `mapstructure:"url"`
	Model         string  `mapstructure:"model"`
	Temperature   float64 `mapstructure:"temperature"`
	MaxTokens     int     `mapstructure:"max_tokens"`
	SystemMessage string  `mapstructure:"system_message"`
}

// CacheConfig controls the search response cache.
type CacheConfig struct {
	TTLSeconds int `mapstructure:"ttl_seconds"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
