// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Escape Game API.

# Handler Types

Each handler is a struct holding the storage it needs:

  - ScoreHandler: root acknowledgement, create and list scores
  - HealthHandler: liveness and readiness probes

Handlers are created via constructor functions. They accept small
interfaces that *db.Store satisfies:

	scoreHandler := handlers.NewScoreHandler(store)

# Scores

	GET  /          → Root (static message, no storage)
	POST /scores/   → CreateScore (body {"name", "time"})
	GET  /scores/   → ListScores (query skip, limit)

CreateScore answers 422 with field detail when the body is not valid JSON,
has a field of the wrong type, or misses name or time. ListScores answers
422 when skip or limit is not an integer; out of range values are clamped
by the store. Storage failures become an opaque 500.

# Probes

	GET /health → Health (always OK)
	GET /ready  → Ready (pings the database)
*/
package handlers
