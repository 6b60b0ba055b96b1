// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/escape-game-scores/db"
	"github.com/danielhkuo/escape-game-scores/handlers"
	"github.com/danielhkuo/escape-game-scores/middleware"
)

func NewRouter(store *db.Store) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	scoreHandler := handlers.NewScoreHandler(store)
	healthHandler := handlers.NewHealthHandler(store)

	// Probes
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("GET /ready", middleware.WithLogging(healthHandler.Ready))

	// Scores
	mux.HandleFunc("POST /scores/{$}", middleware.WithLogging(scoreHandler.CreateScore))
	mux.HandleFunc("GET /scores/{$}", middleware.WithLogging(scoreHandler.ListScores))

	// Root endpoint
	mux.HandleFunc("GET /{$}", middleware.WithLogging(scoreHandler.Root))

	return middleware.CORS(mux)
}
