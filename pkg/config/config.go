// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache and logging settings

package config

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Cache  CacheConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `envconfig:"PORT" default:"8000"`

	// RateLimit is the per-IP request budget per second; 0 disables
	// rate limiting
	RateLimit int `envconfig:"RATE_LIMIT" default:"10"`

	// RateBurst is the per-IP burst allowance
	RateBurst int `envconfig:"RATE_BURST" default:"20"`
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string `envconfig:"CACHE_TYPE" default:"memory"`

	Redis  RedisConfig
	SQLite SQLiteConfig

	// MemoryExpiration is the default TTL for memory cache entries in seconds
	MemoryExpiration int `envconfig:"MEMORY_CACHE_EXPIRATION" default:"3600"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address  string `envconfig:"REDIS_ADDRESS" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	Path string `envconfig:"SQLITE_CACHE_PATH" default:"reputraq-cache.db"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadFromEnv loads configuration from environment variables, reading
// a local .env file first when one exists.
func LoadFromEnv() (*Config, error) {
	// Missing .env is fine; real environments set variables directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	return nil
}
