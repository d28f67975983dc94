// Package server wires the configuration, database, app manager, l10n catalog
// and branding into the HTTP handlers and runs the HTTP server.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/yasinhessnawi1/sharecloud/internal/appframework"
	"github.com/yasinhessnawi1/sharecloud/internal/apps"
	"github.com/yasinhessnawi1/sharecloud/internal/auth"
	"github.com/yasinhessnawi1/sharecloud/internal/config"
	"github.com/yasinhessnawi1/sharecloud/internal/constants"
	"github.com/yasinhessnawi1/sharecloud/internal/database"
	"github.com/yasinhessnawi1/sharecloud/internal/defaults"
	"github.com/yasinhessnawi1/sharecloud/internal/handlers"
	"github.com/yasinhessnawi1/sharecloud/internal/l10n"
	"github.com/yasinhessnawi1/sharecloud/internal/repository"
	"github.com/yasinhessnawi1/sharecloud/migrations"
	"github.com/yasinhessnawi1/sharecloud/scripts"
)

// Handlers contains all HTTP handlers for the application.
type Handlers struct {
	// HealthHandler serves /health and /version
	HealthHandler *handlers.HealthHandler

	// AppsHandler serves the provisioning routes
	AppsHandler *handlers.AppsHandler

	// ThemingHandler serves the branding
	ThemingHandler *handlers.ThemingHandler

	// L10nHandler serves translation tables and scripts
	L10nHandler *handlers.L10nHandler
}

// Server represents the API server.
type Server struct {
	// Config contains application configuration
	Config *config.AppConfig

	// Db provides database access
	Db *database.Pool

	// Apps is the app manager backed by appconfig
	Apps *apps.Manager

	// Catalog holds the embedded translation tables
	Catalog *l10n.Catalog

	// Branding is the defaults accessor over the configured theme
	Branding *defaults.Defaults

	// OCS renders envelopes for every OCS route
	OCS *appframework.OCSController

	// JWTService verifies bearer tokens
	JWTService *auth.JWTService

	// Handlers contains all HTTP request handlers
	Handlers *Handlers

	router     chi.Router
	httpServer *http.Server

	stopOnce        sync.Once
	stopMaintenance chan struct{}
}

// NewServer connects to the configured database, brings its schema up to date
// and creates the server.
func NewServer(cfg *config.AppConfig) (*Server, error) {
	db, err := setupDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	s, err := New(cfg, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New creates a server on an already prepared database pool.
func New(cfg *config.AppConfig, db *database.Pool) (*Server, error) {
	s := &Server{
		Config:          cfg,
		Db:              db,
		stopMaintenance: make(chan struct{}),
	}

	s.setupAuthProviders()

	if err := s.setupServices(); err != nil {
		return nil, fmt.Errorf("failed to set up services: %w", err)
	}

	s.setupHandlers()
	s.SetupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	return s, nil
}

// setupDatabase connects and runs the migrations and seeds.
func setupDatabase(cfg *config.AppConfig) (*database.Pool, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	migrator := migrations.NewMigrator(db)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	seeder := scripts.NewSeeder(db, cfg)
	if err := seeder.SeedDatabase(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	return db, nil
}

// setupAuthProviders creates the bearer token verifier.
func (s *Server) setupAuthProviders() {
	s.JWTService = auth.NewJWTService(&s.Config.JWT)
}

// setupServices creates the app manager, the l10n catalog, the branding accessor
// and the OCS controller shared by all OCS handlers.
func (s *Server) setupServices() error {
	s.Apps = apps.NewManager(repository.NewAppConfigRepository(s.Db), s.Config.Apps.AlwaysEnabled)

	catalog, err := l10n.Load()
	if err != nil {
		return fmt.Errorf("failed to load translations: %w", err)
	}
	s.Catalog = catalog

	s.Branding = defaults.New(defaults.NewThemeProvider(&s.Config.Theme))

	s.OCS = appframework.NewOCSController(constants.AppProvisioningAPI, appframework.CORSPolicy{
		Methods:          s.Config.OCS.CORSMethods,
		AllowedHeaders:   s.Config.OCS.CORSAllowedHeaders,
		MaxAge:           s.Config.OCS.CORSMaxAge,
		AllowedOrigins:   s.Config.CORS.AllowedOrigins,
		AllowCredentials: s.Config.CORS.AllowCredentials,
	}, s.Config.OCS.DefaultFormat)

	log.Info().
		Strs("languages", s.Catalog.Languages(constants.AppFilesSharing)).
		Str("ocs_format", s.OCS.DefaultFormat()).
		Msg("Services initialized")

	return nil
}

// setupHandlers creates the HTTP handlers.
func (s *Server) setupHandlers() {
	s.Handlers = &Handlers{
		HealthHandler:  handlers.NewHealthHandler(s.Db, s.Config.App.Version, s.Config.App.Environment),
		AppsHandler:    handlers.NewAppsHandler(s.Apps, s.OCS),
		ThemingHandler: handlers.NewThemingHandler(s.Branding, s.OCS),
		L10nHandler:    handlers.NewL10nHandler(s.Catalog, s.OCS),
	}
}

// Start runs the HTTP server until it fails or a shutdown signal arrives.
func (s *Server) Start() error {
	serverErrors := make(chan error, 1)

	go func() {
		log.Info().
			Str("address", s.Config.Server.ServerAddress()).
			Msg("Starting server")

		serverErrors <- s.httpServer.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	s.SetupMaintenanceTasks()

	select {
	case err := <-serverErrors:
		s.stopMaintenanceTasks()
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown waits for in-flight requests, then closes the database.
func (s *Server) Shutdown(ctx context.Context) error {
	s.stopMaintenanceTasks()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info().Msg("Server stopped gracefully")

	s.Db.Close()
	log.Info().Msg("Database connection closed")

	return nil
}

// SetupMaintenanceTasks starts the background task that drops the app manager
// cache, so enablement changes written by other server processes show up.
func (s *Server) SetupMaintenanceTasks() {
	ticker := time.NewTicker(constants.AppCacheRefreshInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Apps.Refresh()
				log.Debug().Msg("App manager cache refreshed")
			case <-s.stopMaintenance:
				return
			}
		}
	}()
}

func (s *Server) stopMaintenanceTasks() {
	s.stopOnce.Do(func() { close(s.stopMaintenance) })
}
