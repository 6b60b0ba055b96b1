package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/escape-game-scores/cliparse"
	"github.com/danielhkuo/escape-game-scores/db"
	"github.com/danielhkuo/escape-game-scores/router"
)

func main() {
	var err error

	// Local development settings, optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(cfg.NewLogger())

	// Connect to the database
	store, err := db.Open(cfg)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := store.CreateSchema(context.Background()); err != nil {
		slog.Error("schema creation failed", "error", err)
		store.Close()
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Create server
	server := &http.Server{
		Handler:           router.NewRouter(store),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		slog.Error("listen failed", "addr", server.Addr, "error", err)
		store.Close()
		os.Exit(1)
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = runServer(server, ln, ctrlc, shutdownGrace)

	// Requests have drained (or the grace period ran out), so the pool can go
	if cerr := store.Close(); cerr != nil {
		slog.Error("failed to close database", "error", cerr)
	}

	if err != nil {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}

const shutdownGrace = 10 * time.Second

// runServer serves on ln until stop fires, then shuts down gracefully. It
// only returns once Shutdown has finished, so callers may release shared
// resources afterwards.
func runServer(server *http.Server, ln net.Listener, stop <-chan os.Signal, grace time.Duration) error {
	shutdownDone := make(chan error, 1)
	go func() {
		<-stop
		slog.Info("shutting down", "grace", grace)

		ctx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()

		err := server.Shutdown(ctx)
		if err != nil {
			// Grace period over, drop whatever is left
			server.Close()
		}
		shutdownDone <- err
	}()

	if err := server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-shutdownDone
}
