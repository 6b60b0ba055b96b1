// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /scores/", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms). The request id comes from X-Request-ID when the
client sends one, otherwise a new UUID, and is echoed in the response.

# CORS Middleware

Wrap the whole mux to allow cross-origin access from any frontend:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

All origins, methods and headers are allowed. Preflight OPTIONS requests
are answered without reaching the mux.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	middleware.ValidationErrorResponse(w, verr)

Parse JSON request bodies:

	var req models.ScoreCreate
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ValidationErrorResponse(w, models.BodyDecodeError(err))
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used as the remote field in request logs.
*/
package middleware
