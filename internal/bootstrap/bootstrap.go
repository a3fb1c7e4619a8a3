// Package bootstrap wires the process together with explicit
// dependency injection: configuration is validated first, then
// infrastructure, business layer and HTTP layer are built in order,
// each component receiving its collaborators as constructor arguments.
package bootstrap

import (
	"net/http"

	"github.com/go-sessiongate/sessiongate/internal/auth"
	"github.com/go-sessiongate/sessiongate/internal/config"
	"github.com/go-sessiongate/sessiongate/internal/core"
	"github.com/go-sessiongate/sessiongate/internal/directory"
	"github.com/go-sessiongate/sessiongate/internal/handlers"
	"github.com/go-sessiongate/sessiongate/internal/metrics"
	"github.com/go-sessiongate/sessiongate/internal/token"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Application holds all initialized components
type Application struct {
	Config *config.Config

	// Core infrastructure
	MetricsRecorder      metrics.Recorder
	RateLimitRedisClient *redis.Client

	// Business layer
	Directory     core.UserDirectory
	TokenProvider core.TokenProvider
	Gate          core.RateGate
	AuthService   *auth.Service

	// HTTP
	AuthHandler *handlers.AuthHandler
	Router      *gin.Engine
	Server      *http.Server
}

// Run initializes and starts the application
func Run(cfg *config.Config) error {
	app := &Application{Config: cfg}

	// Phase 1: Validate configuration
	if err := cfg.Validate(); err != nil {
		return err
	}
	warnOnWeakConfiguration(cfg)

	// Phase 2: Initialize infrastructure
	if err := app.initializeInfrastructure(); err != nil {
		return err
	}

	// Phase 3: Initialize business layer
	app.initializeBusinessLayer()

	// Phase 4: Initialize HTTP layer
	app.initializeHTTPLayer()

	// Phase 5: Start server with graceful shutdown
	app.startWithGracefulShutdown()

	return nil
}

// initializeInfrastructure sets up metrics and the Redis client
func (app *Application) initializeInfrastructure() error {
	var err error

	app.MetricsRecorder = metrics.Init(app.Config.MetricsEnabled)

	app.RateLimitRedisClient, err = initializeRateLimitRedisClient(app.Config)
	if err != nil {
		return err
	}

	return nil
}

// initializeBusinessLayer builds the directory, token provider, gate
// and the auth service composed from them
func (app *Application) initializeBusinessLayer() {
	app.Directory = initializeDirectory(app.Config)
	app.TokenProvider = token.NewLocalTokenProvider(app.Config)
	app.Gate = setupRateLimitGate(app.Config, app.RateLimitRedisClient)

	app.AuthService = auth.NewService(
		app.Directory,
		app.TokenProvider,
		app.Gate,
		app.MetricsRecorder,
	)
}

// initializeHTTPLayer sets up handlers, router, and server
func (app *Application) initializeHTTPLayer() {
	app.AuthHandler = handlers.NewAuthHandler(
		app.AuthService,
		app.Config,
		app.MetricsRecorder,
	)
	app.Router = setupRouter(app.Config, app.AuthHandler, app.MetricsRecorder)
	app.Server = createHTTPServer(app.Config, app.Router)
}

// initializeDirectory builds the user directory. The dev fallback
// option only exists on the non-production branch, so a production
// process cannot be configured into the synthetic test user.
func initializeDirectory(cfg *config.Config) core.UserDirectory {
	if cfg.IsProduction {
		return directory.NewJSONDirectory(cfg.UsersFile)
	}
	return directory.NewJSONDirectory(cfg.UsersFile, directory.WithDevFallback())
}
