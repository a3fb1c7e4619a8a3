package bootstrap

import (
	"log"

	"github.com/go-sessiongate/sessiongate/internal/config"
)

// warnOnWeakConfiguration logs startup warnings for configurations
// that are legal but weaker than the production posture.
func warnOnWeakConfiguration(cfg *config.Config) {
	if cfg.JWTSecret == "" {
		// Validate already rejected this in production; in development
		// the token provider refuses to issue tokens until one is set.
		log.Printf("[config] JWT_SECRET is not set; login will fail until a signing secret is configured")
	}

	if !cfg.IsProduction {
		log.Printf("[config] Running in %s mode: fallback test user enabled, session cookie not marked Secure", cfg.Environment)
	}

	if !cfg.EnableRateLimit {
		log.Printf("[config] Rate limiting is disabled by configuration; login abuse protection is OFF")
	}
}
