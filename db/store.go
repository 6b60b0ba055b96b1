// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/danielhkuo/escape-game-scores/cliparse"
)

// Pagination defaults for ListByTime
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// PlayerScore is one persisted completion time
type PlayerScore struct {
	ID   int64   `gorm:"primaryKey;autoIncrement"`
	Name string  `gorm:"index;size:255"`
	Time float64 // seconds, lower is better
}

func (PlayerScore) TableName() string {
	return "scores"
}

// Store owns the gorm handle. Build one with Open and pass it down to the
// handlers that need it.
type Store struct {
	gdb *gorm.DB
}

// Open connects to the database selected by cfg and verifies the connection.
func Open(cfg cliparse.Config) (*Store, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(cfg),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DatabaseType, err)
	}

	s := &Store{gdb: gdb}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Ping(ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return s, nil
}

func dialectorFor(cfg cliparse.Config) (gorm.Dialector, error) {
	switch cfg.DatabaseType {
	case cliparse.DatabaseSQLite:
		return sqlite.Open(sqliteDSN(cfg.DatabaseURL)), nil
	case cliparse.DatabasePostgres:
		conn, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres connection: %w", err)
		}
		return postgres.New(postgres.Config{Conn: conn}), nil
	case cliparse.DatabaseMySQL:
		return mysql.Open(cfg.DatabaseURL), nil
	}
	return nil, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
}

// sqliteDSN adds the pragmas we rely on unless the caller set their own
func sqliteDSN(path string) string {
	if strings.Contains(path, "_pragma=") {
		return path
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

func newGormLogger(cfg cliparse.Config) logger.Interface {
	level := logger.Silent
	if l, err := cfg.SlogLevel(); err == nil && l <= slog.LevelDebug {
		level = logger.Info
	}

	return logger.New(
		slog.NewLogLogger(slog.Default().Handler(), slog.LevelDebug),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
		},
	)
}

// CreateSchema creates the scores table if it does not exist yet.
// Safe to call multiple times.
func (s *Store) CreateSchema(ctx context.Context) error {
	if err := s.gdb.WithContext(ctx).AutoMigrate(&PlayerScore{}); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// WithSession runs fn on a connection checked out for this call only. The
// connection goes back to the pool when fn returns, errors or panics.
func (s *Store) WithSession(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.gdb.WithContext(ctx).Connection(fn)
}

// Insert writes a new score and returns the row as stored.
func (s *Store) Insert(ctx context.Context, name string, seconds float64) (PlayerScore, error) {
	var stored PlayerScore

	err := s.WithSession(ctx, func(sess *gorm.DB) error {
		return sess.Transaction(func(tx *gorm.DB) error {
			row := PlayerScore{Name: name, Time: seconds}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to insert score: %w", err)
			}

			// Re-read so the caller sees exactly what the engine kept
			if err := tx.First(&stored, row.ID).Error; err != nil {
				return fmt.Errorf("failed to reload score %d: %w", row.ID, err)
			}
			return nil
		})
	})
	if err != nil {
		return PlayerScore{}, err
	}

	return stored, nil
}

// ListByTime returns scores fastest first. Ties keep insertion order.
func (s *Store) ListByTime(ctx context.Context, skip, limit int) ([]PlayerScore, error) {
	skip, limit = ClampPage(skip, limit)

	scores := []PlayerScore{}
	if limit == 0 {
		return scores, nil
	}

	err := s.WithSession(ctx, func(sess *gorm.DB) error {
		return sess.
			Order(clause.OrderByColumn{Column: clause.Column{Name: "time"}}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
			Offset(skip).
			Limit(limit).
			Find(&scores).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}

	return scores, nil
}

// ClampPage keeps skip and limit inside [0, ∞) and [0, MaxLimit]
func ClampPage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return skip, limit
}

// Ping checks that the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
