/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the Chinabank demo banking server: environment
  config, SQLite-backed profile store, ledger engine, auth stub, HTTP
  router, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (.env + environment)
  2. Set up the logger
  3. Open the profile store (SQLite, or ":memory:")
  4. Wire the ledger engine and auth service into the handler
  5. Start the server; shut down gracefully on SIGINT/SIGTERM

CONFIGURATION (environment, with defaults):
  SERVER_HOST  0.0.0.0
  SERVER_PORT  8080
  DB_PATH      chinabank.db   (":memory:" supported)
  LOG_LEVEL    info
  APP_ENV      development

EXAMPLES:
  # Run with the default file store
  ./server

  # Throwaway profile
  DB_PATH=":memory:" ./server

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Environment loading
*/
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jachemlyn/chinabank-online/api"
	"github.com/jachemlyn/chinabank-online/auth"
	"github.com/jachemlyn/chinabank-online/config"
	"github.com/jachemlyn/chinabank-online/ledger"
	"github.com/jachemlyn/chinabank-online/logging"
	"github.com/jachemlyn/chinabank-online/store/sqlite"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("info").Fatalf("Invalid configuration: %v", err)
	}
	log := logging.Setup(cfg.LogLevel)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open profile store: %v", err)
	}
	defer store.Close()

	handler := api.NewHandler(ledger.New(store), auth.NewService(), log)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Addr()).Info("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("server stopped")
}
