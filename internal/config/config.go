package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Rate limit store constants
const (
	RateLimitStoreMemory = "memory"
	RateLimitStoreRedis  = "redis"
)

// Environment constants
const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

type Config struct {
	// Server settings
	ServerAddr string
	BaseURL    string

	// Environment
	Environment  string
	IsProduction bool

	// Session token settings
	JWTSecret         string
	SessionLifetime   time.Duration
	SessionCookieName string

	// User directory
	UsersFile string

	// Rate limiting
	EnableRateLimit  bool
	RateLimitStore   string // "memory" or "redis"
	OriginRateLimit  int64  // attempts per window per client address
	AccountRateLimit int64  // failed attempts per window per account
	RateLimitWindow  time.Duration

	// Redis settings (only used when RateLimitStore = "redis")
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	RedisConnTimeout time.Duration

	// Metrics
	MetricsEnabled bool
}

func Load() *Config {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	environment := getEnv("ENVIRONMENT", EnvDevelopment)

	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		BaseURL:    getEnv("BASE_URL", "http://localhost:8080"),

		Environment:  environment,
		IsProduction: environment == EnvProduction,

		JWTSecret:         getEnv("JWT_SECRET", ""),
		SessionLifetime:   getEnvDuration("SESSION_LIFETIME", 24*time.Hour),
		SessionCookieName: getEnv("SESSION_COOKIE_NAME", "auth_token"),

		UsersFile: getEnv("USERS_FILE", "data/users.json"),

		EnableRateLimit:  getEnvBool("ENABLE_RATE_LIMIT", true),
		RateLimitStore:   getEnv("RATE_LIMIT_STORE", RateLimitStoreRedis),
		OriginRateLimit:  getEnvInt64("ORIGIN_RATE_LIMIT", 20),
		AccountRateLimit: getEnvInt64("ACCOUNT_RATE_LIMIT", 5),
		RateLimitWindow:  getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),

		RedisAddr:        getEnv("REDIS_ADDR", ""),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisConnTimeout: getEnvDuration("REDIS_CONN_TIMEOUT", 5*time.Second),

		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
	}
}

// Validate checks configuration consistency. A missing signing secret
// in production is fatal at startup; in development the token provider
// still refuses to issue tokens, so login fails until one is set.
func (c *Config) Validate() error {
	switch c.RateLimitStore {
	case RateLimitStoreMemory, RateLimitStoreRedis:
	default:
		return fmt.Errorf("invalid RATE_LIMIT_STORE value: %q", c.RateLimitStore)
	}

	if c.OriginRateLimit <= 0 || c.AccountRateLimit <= 0 {
		return fmt.Errorf("rate limit thresholds must be positive")
	}
	if c.AccountRateLimit >= c.OriginRateLimit {
		return fmt.Errorf(
			"ACCOUNT_RATE_LIMIT (%d) must be lower than ORIGIN_RATE_LIMIT (%d)",
			c.AccountRateLimit, c.OriginRateLimit,
		)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}

	if c.IsProduction && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var i int
		if _, err := fmt.Sscanf(value, "%d", &i); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		var i int64
		if _, err := fmt.Sscanf(value, "%d", &i); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
