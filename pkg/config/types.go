package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string          `mapstructure:"environment"`
	Server       ServerConfig    `mapstructure:"server"`
	Database     DatabaseConfig  `mapstructure:"database"`
	YouTube      YouTubeConfig   `mapstructure:"youtube"`
	Timestamps   TimestampConfig `mapstructure:"timestamps"`
	Share        ShareConfig     `mapstructure:"share"`
	Cache        CacheConfig     `mapstructure:"cache"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
	Security     SecurityConfig  `mapstructure:"security"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path                  string        `mapstructure:"path"`
	MaxConnections        int           `mapstructure:"max_connections"`
	MaxIdleConnections    int           `mapstructure:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `mapstructure:"connection_max_lifetime"`
	LogQueries            bool          `mapstructure:"log_queries"`
}

// YouTubeConfig contains source metadata fetcher settings. With an API key
// the Data API client is used; otherwise the oEmbed fallback.
type YouTubeConfig struct {
	APIKey        string        `mapstructure:"api_key"`
	Timeout       time.Duration `mapstructure:"timeout"`
	RetryAttempts int           `mapstructure:"retry_attempts"`
	RateLimit     int           `mapstructure:"rate_limit"`
}

// TimestampConfig selects the bookmark persistence strategy
type TimestampConfig struct {
	// Store is "database" (durable) or "memory" (process lifetime)
	Store string `mapstructure:"store"`
}

// ShareConfig contains share link settings
type ShareConfig struct {
	// BaseURL is the public base prepended to share tokens
	BaseURL string `mapstructure:"base_url"`
}

// CacheConfig contains cache settings
type CacheConfig struct {
	// RedisAddr selects the Redis cache backend when non-empty
	RedisAddr     string        `mapstructure:"redis_addr"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	DefaultTTL    time.Duration `mapstructure:"default_ttl"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS     bool `mapstructure:"enable_cors"`
	EnableRecovery bool `mapstructure:"enable_recovery"`
}
