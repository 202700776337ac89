package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	SerpAPI SerpAPIConfig `mapstructure:"serpapi"`
	Seed    SeedConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// SerpAPIConfig holds the shopping search API configuration. The API key
// is never embedded in code; it must arrive through the environment or a
// config file.
type SerpAPIConfig struct {
	APIKey    string  `mapstructure:"api_key"`
	BaseURL   string  `mapstructure:"base_url"`
	RateLimit float64 `mapstructure:"rate_limit"`
	RateBurst int     `mapstructure:"rate_burst"`
}

// SeedConfig controls the sample products loaded at startup
type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/precoscan/")

	// Environment variable settings
	v.SetEnvPrefix("PRECOSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

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
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// SerpAPI defaults. The empty api_key default registers the key so
	// AutomaticEnv values reach Unmarshal; validate still requires a value.
	v.SetDefault("serpapi.api_key", "")
	v.SetDefault("serpapi.base_url", "https://serpapi.com")
	v.SetDefault("serpapi.rate_limit", 1.0)
	v.SetDefault("serpapi.rate_burst", 5)

	// Seed defaults
	v.SetDefault("seed.enabled", true)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.SerpAPI.APIKey == "" {
		return fmt.Errorf("SerpAPI key is required (set PRECOSCAN_SERPAPI_API_KEY)")
	}

	if config.SerpAPI.RateLimit <= 0 {
		return fmt.Errorf("serpapi rate limit must be positive, got: %v", config.SerpAPI.RateLimit)
	}

	if config.SerpAPI.RateBurst < 1 {
		return fmt.Errorf("serpapi rate burst must be at least 1, got: %d", config.SerpAPI.RateBurst)
	}

	return nil
}
