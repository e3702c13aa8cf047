// Package server defines the core Server struct that composes the
// app's main dependencies.
//
// It owns the lifecycle of:
//   - configuration
//   - logger
//   - the static item store
//   - http.Server
//
// It provides constructors and start/shutdown logic to run the
// application cleanly.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Minwook11/echo-tutorial/internal/catalog"
	"github.com/Minwook11/echo-tutorial/internal/config"
	"github.com/rs/zerolog"
)

// Server is the application container that holds shared resources.
// It is not the HTTP server itself; it holds an internal *http.Server
// used to listen and serve requests.
type Server struct {
	// Config holds all environment/config values for the app.
	Config *config.Config

	// Logger is the application's main structured logger.
	Logger *zerolog.Logger

	// DB is the static demonstration item store. It is read-only, so
	// it needs no connection management or shutdown.
	DB *catalog.DB

	httpServer *http.Server
}

// New constructs a Server and initializes its dependencies.
//
// It does NOT start the HTTP server; that is done in SetupHTTPServer
// and Start.
func New(cfg *config.Config, logger *zerolog.Logger) *Server {
	return &Server{
		Config: cfg,
		Logger: logger,
		DB:     catalog.NewDB(),
	}
}

// SetupHTTPServer configures the internal net/http server. The
// router/middleware stack is passed in as handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:    ":" + s.Config.Server.Port,
		Handler: handler,

		// Timeouts protect against slow clients and resource
		// exhaustion. Config stores seconds.
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start runs the HTTP server. It requires SetupHTTPServer to be
// called first and blocks until the server stops or errors.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, finishing inflight
// requests until the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	return nil
}
