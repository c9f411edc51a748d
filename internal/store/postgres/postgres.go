// Package postgres is the production store, backed by a pgx connection pool.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jason-s-yu/snake-arena/internal/store"
)

// Store implements store.Store on top of PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// Connect builds the connection string from POSTGRES_USER, POSTGRES_PASSWORD,
// PG_HOST, PG_PORT and PG_DATABASE, opens a pool, and verifies connectivity
// with a 5 second ping.
func Connect(ctx context.Context) (*Store, error) {
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("PG_HOST"),
		os.Getenv("PG_PORT"),
		os.Getenv("PG_DATABASE"),
	)

	config, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to parse pgx config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: db ping: %v", store.ErrUnavailable, err)
	}

	return &Store{pool: pool}, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// EnsureSchema creates the two tables and their indexes if missing. No
// further migrations are in scope.
func (s *Store) EnsureSchema(ctx context.Context) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS users (
		id         UUID PRIMARY KEY,
		username   TEXT NOT NULL UNIQUE,
		email      TEXT NOT NULL UNIQUE,
		password   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE TABLE IF NOT EXISTS leaderboard_entries (
		seq          BIGSERIAL,
		id           UUID PRIMARY KEY,
		user_id      UUID NOT NULL,
		username     TEXT NOT NULL,
		score        INT NOT NULL,
		mode         TEXT NOT NULL,
		submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_entries_mode ON leaderboard_entries (mode);
	CREATE INDEX IF NOT EXISTS idx_entries_user_mode ON leaderboard_entries (user_id, mode);
	`
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensure schema: %w", wrapErr(err))
	}
	return nil
}

// wrapErr converts driver errors into the store taxonomy: unique violations
// become the duplicate sentinels, connectivity and timeout failures become
// ErrUnavailable, everything else passes through.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "users_email_key":
			return store.ErrEmailTaken
		case "users_username_key":
			return store.ErrUsernameTaken
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	return err
}
