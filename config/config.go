package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	OpenBeauty OpenBeautyConfig
	Sephora    SephoraConfig
	OpenAI     OpenAIConfig
	Cache      CacheConfig
}

// ServerConfig holds server-related configuration. RecommendationsFile, when
// set, makes the service persist every completed result to that path.
type ServerConfig struct {
	Port                string   `mapstructure:"port"`
	Environment         string   `mapstructure:"environment"`
	LogLevel            string   `mapstructure:"log_level"`
	AllowedOrigins      []string `mapstructure:"allowed_origins"`
	RecommendationsFile string   `mapstructure:"recommendations_file"`
}

// OpenBeautyConfig holds Open Beauty Facts API configuration.
// The API is public; only the base URL is configurable.
type OpenBeautyConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// SephoraConfig holds Sephora (RapidAPI) configuration. The key is optional:
// without it the source degrades to an empty contribution instead of failing.
type SephoraConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Host    string `mapstructure:"host"`
}

// OpenAIConfig holds the advice provider configuration. The key is mandatory.
type OpenAIConfig struct {
	APIKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url"`
	Model     string `mapstructure:"model"`
	MaxTokens int    `mapstructure:"max_tokens"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env first so viper's AutomaticEnv sees its values
	_ = godotenv.Load()

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/phperfect/")

	// Environment variable settings
	v.SetEnvPrefix("PHPERFECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Legacy variable names used by the mobile-app deployments
	_ = v.BindEnv("openai.api_key", "PHPERFECT_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("sephora.api_key", "PHPERFECT_SEPHORA_API_KEY", "SEPHORA_API_KEY")

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "3001")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.recommendations_file", "")

	// Catalog source defaults
	v.SetDefault("openbeauty.base_url", "https://world.openbeautyfacts.org/api/v0")
	v.SetDefault("sephora.base_url", "https://sephora.p.rapidapi.com")
	v.SetDefault("sephora.host", "sephora.p.rapidapi.com")

	// Advice provider defaults
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("openai.max_tokens", 1000)

	// Cache defaults. The empty redis_url default registers the key so the
	// environment variable is picked up during unmarshal.
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl", "1h")
}

// validate validates the configuration. Only the advice provider key is
// fatal; a missing Sephora key degrades that source at runtime instead.
func validate(config *Config) error {
	if config.OpenAI.APIKey == "" {
		return fmt.Errorf("OpenAI API key is required (set PHPERFECT_OPENAI_API_KEY)")
	}

	if config.OpenAI.MaxTokens <= 0 {
		return fmt.Errorf("OpenAI max tokens must be positive, got: %d", config.OpenAI.MaxTokens)
	}

	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when cache type is 'redis'")
	}

	return nil
}
