package buslocator

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

var server *http.Server

// StartServer starts the presentation HTTP server in the background. It
// serves the latest Snapshot from the store; rendering cadence is fully
// decoupled from poll cadence.
func StartServer(port int, store *SnapshotStore) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth(store))
	mux.HandleFunc("/api/vehicles.json", handleVehiclesJSON(store))

	addr := fmt.Sprintf(":%d", port)
	server = &http.Server{
		Addr:              addr,
		Handler:           mux,
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

// HandleGracefulShutdown blocks until SIGINT/SIGTERM, cancels the poll
// loop, then drains the HTTP server.
func HandleGracefulShutdown(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info().Msg("Shutdown signal received")
	cancel()
	ctx, timeoutCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer timeoutCancel()
	if server != nil {
		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Server shutdown error")
		} else {
			log.Info().Msg("Server shut down successfully")
		}
	}
}
