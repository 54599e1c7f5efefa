// Path: internal/config/config.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig
	API     APIConfig
	Catalog CatalogConfig
	Log     LogConfig
}

// ServerConfig holds the web server settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// APIConfig holds settings for the PokeAPI client.
type APIConfig struct {
	BaseURL           string `mapstructure:"base_url"`
	RequestsPerSecond int    `mapstructure:"requests_per_second"`
	BurstLimit        int    `mapstructure:"burst_limit"`
	TimeoutSeconds    int    `mapstructure:"timeout_seconds"`
	// Concurrency bounds the in-flight detail requests of the initial load.
	Concurrency int `mapstructure:"concurrency"`
}

// CatalogConfig holds the catalog size and browsing settings.
type CatalogConfig struct {
	Limit    int `mapstructure:"limit"`
	PageSize int `mapstructure:"page_size"`
	// DetailCacheSize enables a per-id detail cache when positive.
	DetailCacheSize int `mapstructure:"detail_cache_size"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" or "json"
}

// Load loads the configuration from file and environment variables.
// An empty path searches ./configs for config.yaml; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("API.BASE_URL", "https://pokeapi.co/api/v2")
	v.SetDefault("API.REQUESTS_PER_SECOND", 50)
	v.SetDefault("API.BURST_LIMIT", 50)
	v.SetDefault("API.TIMEOUT_SECONDS", 15)
	v.SetDefault("API.CONCURRENCY", 16)
	v.SetDefault("CATALOG.LIMIT", 200)
	v.SetDefault("CATALOG.PAGE_SIZE", 20)
	v.SetDefault("CATALOG.DETAIL_CACHE_SIZE", 0)
	v.SetDefault("LOG.LEVEL", "info")
	v.SetDefault("LOG.FORMAT", "text")

	// Load from config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Load from environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the application cannot run with.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("invalid config: api.base_url is empty")
	}
	if c.API.RequestsPerSecond <= 0 || c.API.BurstLimit <= 0 {
		return fmt.Errorf("invalid config: api rate limit must be positive (rps=%d, burst=%d)", c.API.RequestsPerSecond, c.API.BurstLimit)
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid config: api.timeout_seconds must be positive")
	}
	if c.API.Concurrency <= 0 {
		return fmt.Errorf("invalid config: api.concurrency must be positive")
	}
	if c.Catalog.Limit <= 0 {
		return fmt.Errorf("invalid config: catalog.limit must be positive")
	}
	if c.Catalog.PageSize <= 0 {
		return fmt.Errorf("invalid config: catalog.page_size must be positive")
	}
	if c.Catalog.DetailCacheSize < 0 {
		return fmt.Errorf("invalid config: catalog.detail_cache_size must not be negative")
	}
	return nil
}
