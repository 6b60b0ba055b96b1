// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires handlers to URL patterns.

NewRouter builds a ServeMux with Go 1.22 method patterns and wraps it in
the CORS middleware:

	handler := router.NewRouter(store)
	server := http.Server{Handler: handler, Addr: ":8000"}

# Routes

	GET  /          → ScoreHandler.Root
	POST /scores/   → ScoreHandler.CreateScore
	GET  /scores/   → ScoreHandler.ListScores
	GET  /health    → HealthHandler.Health
	GET  /ready     → HealthHandler.Ready

Every route except /health goes through middleware.WithLogging. The
patterns end in {$}, so only the exact paths match; GET /scores is
redirected to /scores/ by the mux, other paths answer 404.
*/
package router
