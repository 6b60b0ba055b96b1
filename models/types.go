package models

import "strings"

// RootMessage is returned by GET /
const RootMessage = "Escape Game API is running"

// Request types

// ScoreCreate is the body of POST /scores/. Pointers let us tell a missing
// field apart from a zero value.
type ScoreCreate struct {
	Name *string  `json:"name" validate:"required"`
	Time *float64 `json:"time" validate:"required"`
}

// Response types

type Score struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Time float64 `json:"time"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// FieldError describes one offending input. Loc is the path to it, for
// example ["body", "time"] or ["query", "limit"].
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// ValidationError is returned with status 422
type ValidationError struct {
	Detail []FieldError `json:"detail"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Detail))
	for _, d := range e.Detail {
		parts = append(parts, strings.Join(d.Loc, ".")+": "+d.Msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
