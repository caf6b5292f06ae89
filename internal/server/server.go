// Package server provides the HTTP server for the dirty secrets API.
// It handles routing, middleware configuration, and server lifecycle
// management, including graceful shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/tinhat/dirtysecrets/internal/config"
	"github.com/tinhat/dirtysecrets/internal/constants"
	"github.com/tinhat/dirtysecrets/internal/database"
	"github.com/tinhat/dirtysecrets/internal/handlers"
	"github.com/tinhat/dirtysecrets/internal/repository"
	"github.com/tinhat/dirtysecrets/internal/service"
	"github.com/tinhat/dirtysecrets/migrations"
)

// Handlers contains all HTTP handlers for the application
type Handlers struct {
	// UserHandler manages user CRUD endpoints
	UserHandler *handlers.UserHandler

	// SecretHandler manages secret CRUD endpoints
	SecretHandler *handlers.SecretHandler

	// HealthHandler manages the health and version endpoints
	HealthHandler *handlers.HealthHandler
}

// Server represents the API server. It encapsulates all server components and
// handles initialization, startup, and graceful shutdown.
type Server struct {
	// Config contains application configuration
	Config *config.AppConfig

	// Db provides database access
	Db *database.Pool

	// router handles HTTP routing
	router chi.Router

	// Handlers contains all HTTP request handlers
	Handlers *Handlers

	// httpServer is the underlying HTTP server
	httpServer *http.Server
}

// NewServer creates a new server instance with all required components.
// Initialization follows dependency order: database → repositories →
// services → handlers → routes.
func NewServer(cfg *config.AppConfig) (*Server, error) {
	s := &Server{
		Config: cfg,
	}

	if err := s.setupDatabase(); err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
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

// setupDatabase initializes the database connection and runs migrations
func (s *Server) setupDatabase() error {
	db, err := database.Connect(s.Config)
	if err != nil {
		return err
	}

	s.Db = db

	// Run migrations to create the schema and tables if they don't exist
	migrator := migrations.NewMigrator(db)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	return nil
}

// setupHandlers wires repositories, services, and handlers together
func (s *Server) setupHandlers() {
	userRepo := repository.NewUserRepository(s.Db)
	secretRepo := repository.NewSecretRepository(s.Db)

	userService := service.NewUserService(userRepo)
	secretService := service.NewSecretService(secretRepo)

	s.Handlers = &Handlers{
		UserHandler:   handlers.NewUserHandler(userService),
		SecretHandler: handlers.NewSecretHandler(secretService),
		HealthHandler: handlers.NewHealthHandler(s.Db, s.Config),
	}
}

// Start starts the HTTP server and blocks until an error occurs or a
// shutdown signal is received, then shuts down gracefully.
func (s *Server) Start() error {
	// Create a channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info().
			Str("address", s.Config.Server.ServerAddress()).
			Msg("Starting server")

		serverErrors <- s.httpServer.ListenAndServe()
	}()

	// Create a channel to listen for OS signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until an OS signal or an error is received
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			// Shutdown the server immediately if graceful shutdown fails
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// before closing the database connection.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info().Msg("Server stopped gracefully")

	s.Db.Close()
	log.Info().Msg("Database connection closed")

	return nil
}
