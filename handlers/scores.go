// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/escape-game-scores/db"
	"github.com/danielhkuo/escape-game-scores/middleware"
	"github.com/danielhkuo/escape-game-scores/models"
)

// ScoreStore is the part of db.Store the score handlers use
type ScoreStore interface {
	Insert(ctx context.Context, name string, seconds float64) (db.PlayerScore, error)
	ListByTime(ctx context.Context, skip, limit int) ([]db.PlayerScore, error)
}

type ScoreHandler struct {
	store ScoreStore
}

func NewScoreHandler(store ScoreStore) *ScoreHandler {
	return &ScoreHandler{store: store}
}

// Root handles GET /
func (h *ScoreHandler) Root(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: models.RootMessage,
	})
}

// CreateScore handles POST /scores/
func (h *ScoreHandler) CreateScore(w http.ResponseWriter, r *http.Request) {
	var req models.ScoreCreate
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ValidationErrorResponse(w, models.BodyDecodeError(err))
		return
	}

	if err := req.Validate(); err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			middleware.ValidationErrorResponse(w, verr)
			return
		}
		slog.Error("failed to validate score", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to validate request")
		return
	}

	record, err := h.store.Insert(r.Context(), *req.Name, *req.Time)
	if err != nil {
		slog.Error("failed to insert score", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("score created", "score_id", record.ID, "name", record.Name, "time", record.Time)

	middleware.JSONResponse(w, http.StatusOK, toScore(record))
}

// ListScores handles GET /scores/?skip=&limit=
// Returns scores fastest first
func (h *ScoreHandler) ListScores(w http.ResponseWriter, r *http.Request) {
	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		middleware.ValidationErrorResponse(w, models.QueryIntError("skip"))
		return
	}
	limit, err := queryInt(r, "limit", db.DefaultLimit)
	if err != nil {
		middleware.ValidationErrorResponse(w, models.QueryIntError("limit"))
		return
	}

	records, err := h.store.ListByTime(r.Context(), skip, limit)
	if err != nil {
		slog.Error("failed to list scores", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	scores := make([]models.Score, 0, len(records))
	for _, rec := range records {
		scores = append(scores, toScore(rec))
	}

	middleware.JSONResponse(w, http.StatusOK, scores)
}

// queryInt reads an optional integer query parameter
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func toScore(rec db.PlayerScore) models.Score {
	return models.Score{
		ID:   rec.ID,
		Name: rec.Name,
		Time: rec.Time,
	}
}
