// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, news source, and logging

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// News contains feed-search endpoint configuration
	News NewsConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimitRPS is the allowed request rate per second
	RateLimitRPS float64

	// RateLimitBurst is the token bucket burst size
	RateLimitBurst int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// NewsConfig holds the feed-search endpoint and fetch policy
type NewsConfig struct {
	// Endpoint is the feed-search base URL
	Endpoint string

	// Language, Country and Edition are the fixed locale parameters
	Language string
	Country  string
	Edition  string

	// CacheTTL is the search result cache window in seconds
	CacheTTL int

	// HTTPTimeout is the outbound request timeout in seconds
	HTTPTimeout int
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum log level (debug/info/warn/error)
	Level string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8000"),
			RateLimitRPS:   getEnvAsFloatOrDefault("RATE_LIMIT_RPS", 5),
			RateLimitBurst: getEnvAsIntOrDefault("RATE_LIMIT_BURST", 10),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 300),
			},
		},
		News: NewsConfig{
			Endpoint:    getEnvOrDefault("NEWS_ENDPOINT", "https://news.google.com/rss/search"),
			Language:    getEnvOrDefault("NEWS_LANGUAGE", "ja"),
			Country:     getEnvOrDefault("NEWS_COUNTRY", "JP"),
			Edition:     getEnvOrDefault("NEWS_EDITION", "JP:ja"),
			CacheTTL:    getEnvAsIntOrDefault("NEWS_CACHE_TTL", 300),
			HTTPTimeout: getEnvAsIntOrDefault("HTTP_TIMEOUT", 30),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" {
		return errors.New("cache type must be 'redis' or 'memory'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.News.Endpoint == "" {
		return errors.New("news endpoint cannot be empty")
	}

	if c.News.CacheTTL < 0 {
		return errors.New("news cache TTL cannot be negative")
	}

	if c.News.HTTPTimeout < 1 {
		return errors.New("HTTP timeout must be at least 1 second")
	}

	return nil
}
