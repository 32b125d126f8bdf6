// Package main implements the entry point for the coursedeck API server,
// a JSON API for user accounts and the courses they own.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/coursedeck/coursedeck-api/internal/config"
	"github.com/coursedeck/coursedeck-api/internal/platform/logger"
	"github.com/coursedeck/coursedeck-api/internal/platform/postgres"
)

func main() {
	skipMigrations := flag.Bool("skip-migrations", false, "do not apply schema migrations on startup")
	flag.Parse()

	if err := run(*skipMigrations); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// run wires configuration, logging, the database, and the HTTP server, then
// blocks until shutdown. Split from main so it can return errors.
func run(skipMigrations bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if skipMigrations {
		appLogger.Info("skipping schema migrations")
	} else {
		if err := postgres.RunMigrations(context.Background(), db); err != nil {
			return err
		}
		appLogger.Info("schema migrations applied")
	}

	router := newRouter(cfg, db, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Serve until interrupted, then drain in-flight requests.
	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		appLogger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down cleanly: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
