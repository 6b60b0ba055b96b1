// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/danielhkuo/escape-game-scores/cliparse"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := cliparse.Config{
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  filepath.Join(t.TempDir(), "scores.db"),
		LogLevel:     "info",
	}
	store, err := Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.CreateSchema(context.Background()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return store
}

func TestCreateSchemaIdempotent(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		if err := store.CreateSchema(context.Background()); err != nil {
			t.Fatalf("CreateSchema call %d failed: %v", i+1, err)
		}
	}

	if !store.gdb.Migrator().HasTable("scores") {
		t.Error("Expected scores table to exist")
	}
	if !store.gdb.Migrator().HasIndex(&PlayerScore{}, "idx_scores_name") {
		t.Error("Expected index on scores.name")
	}
}

func TestInsert(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first, err := store.Insert(ctx, "Alice", 120.5)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if first.ID != 1 || first.Name != "Alice" || first.Time != 120.5 {
		t.Errorf("Unexpected record: %+v", first)
	}

	second, err := store.Insert(ctx, "Bob", 95.2)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if second.ID != 2 {
		t.Errorf("Expected id 2, got %d", second.ID)
	}

	// The returned record matches the stored row
	var stored PlayerScore
	if err := store.gdb.First(&stored, second.ID).Error; err != nil {
		t.Fatalf("Failed to read back: %v", err)
	}
	if stored != second {
		t.Errorf("Returned %+v but stored %+v", second, stored)
	}
}

func TestInsertAcceptsAnyValues(t *testing.T) {
	store := openTestStore(t)

	// No domain validation happens at this layer
	for _, tc := range []struct {
		name    string
		seconds float64
	}{
		{"", 10},
		{"Negative", -3.5},
		{"Zero", 0},
		{"Duplicate", 1},
		{"Duplicate", 1},
	} {
		if _, err := store.Insert(context.Background(), tc.name, tc.seconds); err != nil {
			t.Errorf("Insert(%q, %v) failed: %v", tc.name, tc.seconds, err)
		}
	}
}

func TestListByTime(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		scores, err := store.ListByTime(ctx, 0, DefaultLimit)
		if err != nil {
			t.Fatalf("ListByTime failed: %v", err)
		}
		if scores == nil || len(scores) != 0 {
			t.Errorf("Expected empty non-nil slice, got %#v", scores)
		}
	})

	for _, s := range []struct {
		name    string
		seconds float64
	}{
		{"Alice", 120.5},
		{"Bob", 95.2},
		{"Carol", 300},
		{"Dave", 95.2},
		{"Eve", 10},
	} {
		if _, err := store.Insert(ctx, s.name, s.seconds); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}

	t.Run("ordered fastest first with stable ties", func(t *testing.T) {
		scores, err := store.ListByTime(ctx, 0, DefaultLimit)
		if err != nil {
			t.Fatalf("ListByTime failed: %v", err)
		}

		expected := []string{"Eve", "Bob", "Dave", "Alice", "Carol"}
		if len(scores) != len(expected) {
			t.Fatalf("Expected %d scores, got %d", len(expected), len(scores))
		}
		for i, name := range expected {
			if scores[i].Name != name {
				t.Errorf("Position %d: expected %s, got %s", i, name, scores[i].Name)
			}
		}
		for i := 1; i < len(scores); i++ {
			if scores[i-1].Time > scores[i].Time {
				t.Errorf("Order violated at %d: %v > %v", i, scores[i-1].Time, scores[i].Time)
			}
		}
	})

	t.Run("pages partition the full sequence", func(t *testing.T) {
		all, err := store.ListByTime(ctx, 0, DefaultLimit)
		if err != nil {
			t.Fatalf("ListByTime failed: %v", err)
		}

		var paged []PlayerScore
		for skip := 0; ; skip += 2 {
			page, err := store.ListByTime(ctx, skip, 2)
			if err != nil {
				t.Fatalf("ListByTime(%d, 2) failed: %v", skip, err)
			}
			if len(page) == 0 {
				break
			}
			paged = append(paged, page...)
		}

		if len(paged) != len(all) {
			t.Fatalf("Expected %d paged scores, got %d", len(all), len(paged))
		}
		for i := range all {
			if paged[i].ID != all[i].ID {
				t.Errorf("Position %d: expected id %d, got %d", i, all[i].ID, paged[i].ID)
			}
		}
	})

	t.Run("clamped arguments", func(t *testing.T) {
		scores, err := store.ListByTime(ctx, -5, 2)
		if err != nil {
			t.Fatalf("ListByTime failed: %v", err)
		}
		if len(scores) != 2 || scores[0].Name != "Eve" {
			t.Errorf("Negative skip should behave like 0, got %+v", scores)
		}

		scores, err = store.ListByTime(ctx, 0, -1)
		if err != nil {
			t.Fatalf("ListByTime failed: %v", err)
		}
		if len(scores) != 0 {
			t.Errorf("Negative limit should return nothing, got %d", len(scores))
		}

		scores, err = store.ListByTime(ctx, 100, 10)
		if err != nil {
			t.Fatalf("ListByTime failed: %v", err)
		}
		if len(scores) != 0 {
			t.Errorf("Skip past the end should return nothing, got %d", len(scores))
		}
	})
}

func TestClampPage(t *testing.T) {
	testCases := []struct {
		skip, limit         int
		wantSkip, wantLimit int
	}{
		{0, 100, 0, 100},
		{-1, 10, 0, 10},
		{5, -3, 5, 0},
		{0, MaxLimit + 1, 0, MaxLimit},
		{7, MaxLimit, 7, MaxLimit},
	}

	for _, tc := range testCases {
		skip, limit := ClampPage(tc.skip, tc.limit)
		if skip != tc.wantSkip || limit != tc.wantLimit {
			t.Errorf("ClampPage(%d, %d) = (%d, %d), want (%d, %d)",
				tc.skip, tc.limit, skip, limit, tc.wantSkip, tc.wantLimit)
		}
	}
}

func TestWithSessionPropagatesErrors(t *testing.T) {
	store := openTestStore(t)
	want := errors.New("boom")

	err := store.WithSession(context.Background(), func(tx *gorm.DB) error {
		return want
	})
	if !errors.Is(err, want) {
		t.Errorf("Expected %v, got %v", want, err)
	}

	// The pool is still usable afterwards
	if _, err := store.Insert(context.Background(), "After", 1); err != nil {
		t.Errorf("Insert after failed session: %v", err)
	}
}

func TestInsertCancelledContext(t *testing.T) {
	store := openTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.Insert(ctx, "Ghost", 1); err == nil {
		t.Fatal("Expected error with cancelled context")
	}

	scores, err := store.ListByTime(context.Background(), 0, DefaultLimit)
	if err != nil {
		t.Fatalf("ListByTime failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Failed insert left %d rows behind", len(scores))
	}
}

func TestConcurrentInserts(t *testing.T) {
	store := openTestStore(t)

	const writers = 10
	var wg sync.WaitGroup
	errs := make(chan error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := store.Insert(context.Background(), "Racer", float64(i)); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Concurrent insert failed: %v", err)
	}

	scores, err := store.ListByTime(context.Background(), 0, DefaultLimit)
	if err != nil {
		t.Fatalf("ListByTime failed: %v", err)
	}
	if len(scores) != writers {
		t.Errorf("Expected %d scores, got %d", writers, len(scores))
	}

	seen := map[int64]bool{}
	for _, s := range scores {
		if seen[s.ID] {
			t.Errorf("Duplicate id %d", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestOpenUnsupportedType(t *testing.T) {
	_, err := Open(cliparse.Config{DatabaseType: "oracle", DatabaseURL: "x"})
	if err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestSQLiteDSN(t *testing.T) {
	testCases := []struct {
		in, want string
	}{
		{"./escape_game.db", "./escape_game.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"},
		{"file:x.db?cache=shared", "file:x.db?cache=shared&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"},
		{"x.db?_pragma=foreign_keys(1)", "x.db?_pragma=foreign_keys(1)"},
	}

	for _, tc := range testCases {
		if got := sqliteDSN(tc.in); got != tc.want {
			t.Errorf("sqliteDSN(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
