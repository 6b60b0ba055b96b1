// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Escape Game scores API.

The service records how long each player took to finish the escape game
and serves the leaderboard, fastest first.

# Starting the Server

With no configuration it listens on :8000 and stores scores in
./escape_game.db:

	go run .

Or with flags:

	go run . -p 9000 -t postgres -d "postgres://..."

A .env file in the working directory is loaded before flags are parsed.

# Configuration

  - PORT (-p): Server port (default: 8000)
  - DATABASE_TYPE (-t): sqlite, postgres or mysql (default: sqlite)
  - DATABASE_URL (-d): DSN or sqlite file path
  - LOG_LEVEL (-log-level), LOG_FORMAT (-log-format)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (scores, probes)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and validation error types
  - db: gorm store for the scores table
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
