// HTTP server initialization and lifecycle management.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/dmonterocr/legalia/internal/api"
	"github.com/dmonterocr/legalia/internal/domain/chat"
	"github.com/dmonterocr/legalia/internal/infra/config"
)

// Config holds HTTP server configuration.
type Config struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns default HTTP server configuration. WriteTimeout is
// generous because a response is only written after the completion provider
// answers.
func DefaultConfig() Config {
	return Config{
		Host:         "0.0.0.0",
		Port:         8080,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Server wraps the HTTP server and database.
type Server struct {
	config Config
	db     *sql.DB
	http   *http.Server
	logger *zap.Logger
}

// NewServer creates a new HTTP server with routing wired against db and cfg.
func NewServer(db *sql.DB, cfg config.Config, tmpl *chat.PromptTemplate, logger *zap.Logger, srvCfg Config) *Server {
	router := api.NewRouter(db, cfg, tmpl, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", srvCfg.Host, srvCfg.Port),
		Handler:      router,
		ReadTimeout:  srvCfg.ReadTimeout,
		WriteTimeout: srvCfg.WriteTimeout,
		IdleTimeout:  srvCfg.IdleTimeout,
	}

	return &Server{
		config: srvCfg,
		db:     db,
		http:   httpServer,
		logger: logger,
	}
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server and closes the database connection.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if err := s.http.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("database close error: %w", err)
	}

	s.logger.Info("server shutdown complete")
	return nil
}
