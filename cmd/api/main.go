// Command api runs the tutorial HTTP API.
//
// Startup order: config, logger, server container, router. The
// process then serves until SIGINT/SIGTERM, at which point it shuts
// down gracefully with a deadline for inflight requests.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Minwook11/echo-tutorial/internal/config"
	"github.com/Minwook11/echo-tutorial/internal/handler"
	"github.com/Minwook11/echo-tutorial/internal/logger"
	"github.com/Minwook11/echo-tutorial/internal/middleware"
	"github.com/Minwook11/echo-tutorial/internal/router"
	"github.com/Minwook11/echo-tutorial/internal/server"
)

// shutdownTimeout bounds how long inflight requests may run after a
// termination signal.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// config.Load fails fast internally; this guards the contract.
		panic(err)
	}

	log := logger.New(cfg.Logging)

	s := server.New(cfg, log)

	mw := middleware.NewMiddlewares(s)
	h := handler.NewHandlers(s)
	r := router.New(s, mw, h)

	s.SetupHTTPServer(r)

	// Serve in the background so the main goroutine can wait for
	// termination signals.
	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("server failed")
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
