package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, "auth_token", cfg.SessionCookieName)
	assert.Equal(t, 24*time.Hour, cfg.SessionLifetime)
	assert.Equal(t, "data/users.json", cfg.UsersFile)
	assert.True(t, cfg.EnableRateLimit)
	assert.Equal(t, RateLimitStoreRedis, cfg.RateLimitStore)
	assert.Equal(t, int64(20), cfg.OriginRateLimit)
	assert.Equal(t, int64(5), cfg.AccountRateLimit)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("SESSION_LIFETIME", "1h")
	t.Setenv("ORIGIN_RATE_LIMIT", "50")
	t.Setenv("ACCOUNT_RATE_LIMIT", "10")
	t.Setenv("RATE_LIMIT_STORE", "memory")

	cfg := Load()

	assert.True(t, cfg.IsProduction)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.SessionLifetime)
	assert.Equal(t, int64(50), cfg.OriginRateLimit)
	assert.Equal(t, int64(10), cfg.AccountRateLimit)
	assert.Equal(t, RateLimitStoreMemory, cfg.RateLimitStore)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment:      EnvDevelopment,
			RateLimitStore:   RateLimitStoreMemory,
			OriginRateLimit:  20,
			AccountRateLimit: 5,
			RateLimitWindow:  time.Minute,
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
		errorMsg    string
	}{
		{
			name:        "valid memory store",
			mutate:      func(c *Config) {},
			expectError: false,
		},
		{
			name:        "valid redis store",
			mutate:      func(c *Config) { c.RateLimitStore = RateLimitStoreRedis },
			expectError: false,
		},
		{
			name:        "invalid store value",
			mutate:      func(c *Config) { c.RateLimitStore = "reddis" },
			expectError: true,
			errorMsg:    `invalid RATE_LIMIT_STORE value: "reddis"`,
		},
		{
			name:        "account threshold not below origin threshold",
			mutate:      func(c *Config) { c.AccountRateLimit = 20 },
			expectError: true,
			errorMsg:    "must be lower than",
		},
		{
			name:        "zero threshold",
			mutate:      func(c *Config) { c.OriginRateLimit = 0 },
			expectError: true,
			errorMsg:    "must be positive",
		},
		{
			name:        "zero window",
			mutate:      func(c *Config) { c.RateLimitWindow = 0 },
			expectError: true,
			errorMsg:    "RATE_LIMIT_WINDOW must be positive",
		},
		{
			name: "missing secret in production",
			mutate: func(c *Config) {
				c.Environment = EnvProduction
				c.IsProduction = true
			},
			expectError: true,
			errorMsg:    "JWT_SECRET is required in production",
		},
		{
			name: "secret set in production",
			mutate: func(c *Config) {
				c.Environment = EnvProduction
				c.IsProduction = true
				c.JWTSecret = "secret"
			},
			expectError: false,
		},
		{
			name:        "missing secret allowed outside production",
			mutate:      func(c *Config) {},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
