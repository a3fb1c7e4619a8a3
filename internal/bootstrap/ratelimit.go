package bootstrap

import (
	"log"

	"github.com/go-sessiongate/sessiongate/internal/config"
	"github.com/go-sessiongate/sessiongate/internal/core"
	"github.com/go-sessiongate/sessiongate/internal/ratelimit"

	"github.com/redis/go-redis/v9"
)

// setupRateLimitGate builds the limiter gate for the configured store.
// When the gate cannot be backed by a counter store it degrades to
// always-allow, and that posture is logged explicitly, never assumed
// silently.
func setupRateLimitGate(cfg *config.Config, redisClient *redis.Client) core.RateGate {
	if !cfg.EnableRateLimit {
		log.Printf("Rate limiting disabled by configuration; all login attempts will be admitted")
		return ratelimit.NewNoopGate()
	}

	if cfg.RateLimitStore == config.RateLimitStoreRedis && redisClient == nil {
		log.Printf("REDIS_ADDR is not configured; rate limiting disabled, all login attempts will be admitted")
		return ratelimit.NewNoopGate()
	}

	gate, err := ratelimit.NewGate(ratelimit.Config{
		StoreType:    cfg.RateLimitStore,
		OriginLimit:  cfg.OriginRateLimit,
		AccountLimit: cfg.AccountRateLimit,
		Window:       cfg.RateLimitWindow,
		RedisClient:  redisClient,
	})
	if err != nil {
		log.Printf("Failed to create rate limiter gate, falling back to always-allow: %v", err)
		return ratelimit.NewNoopGate()
	}

	if cfg.RateLimitStore == config.RateLimitStoreMemory {
		log.Printf("Rate limiting enabled (store: memory, single instance only): origin %d/%s, account %d/%s",
			cfg.OriginRateLimit, cfg.RateLimitWindow, cfg.AccountRateLimit, cfg.RateLimitWindow)
	} else {
		log.Printf("Rate limiting enabled (store: redis): origin %d/%s, account %d/%s",
			cfg.OriginRateLimit, cfg.RateLimitWindow, cfg.AccountRateLimit, cfg.RateLimitWindow)
	}
	return gate
}
