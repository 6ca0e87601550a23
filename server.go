package gtfsrtarrivals

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	server *http.Server
)

// StartServer begins serving the board API in the background. Call
// HandleGracefulShutdown afterwards to block until a termination signal.
func StartServer(svc *Service) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", svc.handleHealth)
	mux.HandleFunc("/api/arrivals", svc.handleArrivals)
	mux.HandleFunc("/api/stops", svc.handleStops)

	addr := fmt.Sprintf(":%d", svc.cfg.Server.Port)
	server = &http.Server{
		Addr:              addr,
		Handler:           withMiddleware(mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()
	log.Info().Str("addr", addr).Msg("Server listening")
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM, then drains the
// server with a 10s grace period.
func HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info().Msg("Shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Server shutdown error")
		} else {
			log.Info().Msg("Server shut down successfully")
		}
	}
}
