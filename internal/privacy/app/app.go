package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	httpapi "github.com/aussiebroadwan/rally/internal/privacy/http"
	"github.com/aussiebroadwan/rally/internal/privacy/service"
	"github.com/aussiebroadwan/rally/internal/privacy/store"
	"github.com/aussiebroadwan/rally/internal/privacy/store/drivers/postgres"
	"github.com/aussiebroadwan/rally/internal/privacy/store/drivers/sqlite"
	"github.com/aussiebroadwan/rally/pkg/jwtx"
	"github.com/aussiebroadwan/rally/pkg/slogx"
)

// BuildVersion is overridden at build time with -ldflags "-X ...".
var BuildVersion = "v0.1.0"

// Application wires the privacy service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	keys     *jwtx.KeySet
	verifier jwtx.Verifier
	refresh  *KeyRefresher
	sentry   bool

	settingsService       *service.SettingsService
	preferencesService    *service.PreferencesService
	handleService         *service.HandleService
	identityService       *service.IdentityService
	recommendationService *service.RecommendationService

	server *http.Server
	router *httpapi.Router
}

func New(ctx context.Context, cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "privacy-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initSentry(); err != nil {
		return nil, err
	}
	if err := app.initDatabase(ctx); err != nil {
		return nil, err
	}
	app.initKeys(ctx)
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the fully wrapped HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.server.Handler
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.refresh.Start()

	app.logger.Info("privacy service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"driver", app.cfg.DatabaseDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.refresh.Stop()
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains in-flight requests, then stops background work and closes
// the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down privacy service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.refresh.Stop()

	if app.sentry {
		sentry.Flush(2 * time.Second)
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("privacy service stopped")
	return nil
}

func (app *Application) initSentry() error {
	if app.cfg.SentryDSN == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         app.cfg.SentryDSN,
		Environment: app.cfg.Env,
		Release:     "privacy-service@" + BuildVersion,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize sentry: %w", err)
	}
	app.sentry = true
	app.logger.Info("sentry error reporting enabled")
	return nil
}

func (app *Application) initDatabase(ctx context.Context) error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.DatabaseDriver {
	case DriverPostgres:
		db, err = postgres.NewStore(ctx, app.cfg.DatabaseURL)
	default:
		db, err = sqlite.NewStore(app.cfg.DatabaseFile)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize %s database: %w", app.cfg.DatabaseDriver, err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initKeys loads the auth service's JWKS. A failed first fetch is not fatal:
// /readyz reports the service degraded until the refresher succeeds.
func (app *Application) initKeys(ctx context.Context) {
	app.keys = jwtx.NewKeySet()
	app.verifier = jwtx.NewVerifier(app.keys, jwtx.VerifyOptions{
		Issuer:   app.cfg.AuthIssuer,
		Audience: app.cfg.Audiences(),
		Leeway:   30 * time.Second,
	})
	app.refresh = NewKeyRefresher(app.keys, app.cfg.AuthJWKSURL, app.logger, app.cfg.JWKSRefreshInterval)

	fetchCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := app.refresh.Refresh(fetchCtx); err != nil {
		app.logger.Warn("initial jwks fetch failed", "url", app.cfg.AuthJWKSURL, "error", err)
		return
	}
	app.logger.Info("jwks loaded", "keys", app.keys.Len())
}

func (app *Application) initServices() {
	app.settingsService = &service.SettingsService{Store: app.db}
	app.preferencesService = &service.PreferencesService{Store: app.db}
	app.handleService = &service.HandleService{
		Store:     app.db,
		MaxActive: app.cfg.MaxActiveHandles,
	}
	app.identityService = &service.IdentityService{Store: app.db}
	app.recommendationService = &service.RecommendationService{Store: app.db}
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.SettingsService = app.settingsService
	router.PreferencesService = app.preferencesService
	router.HandleService = app.handleService
	router.IdentityService = app.identityService
	router.RecommendationService = app.recommendationService
	router.ApplyRoutes()

	if app.sentry {
		router.Use(sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle)
	}

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
