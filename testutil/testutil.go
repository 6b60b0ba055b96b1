// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/escape-game-scores/cliparse"
	"github.com/danielhkuo/escape-game-scores/db"
)

// GetTestConfig returns a standard test configuration backed by a sqlite
// file under dir
func GetTestConfig(dir string) cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseURL:  filepath.Join(dir, "escape_game_test.db"),
		DatabaseType: cliparse.DatabaseSQLite,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// SetupTestStore opens a fresh store with the schema in place. It is closed
// when the test ends.
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()

	store, err := db.Open(GetTestConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.CreateSchema(context.Background()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return store
}

// CreateTestScore inserts a score directly through the store
func CreateTestScore(t *testing.T, store *db.Store, name string, seconds float64) db.PlayerScore {
	t.Helper()

	rec, err := store.Insert(context.Background(), name, seconds)
	if err != nil {
		t.Fatalf("Failed to create test score: %v", err)
	}
	return rec
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		// Raw body, sent as is
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(b)))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, _ := json.Marshal(b)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
