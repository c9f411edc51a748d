// Package store defines the single storage abstraction the service runs on.
// The postgres sub-package is the production implementation; the memory
// sub-package exists for tests only.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jason-s-yu/snake-arena/internal/models"
)

var (
	// ErrEmailTaken is returned on signup when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrUsernameTaken is returned on signup when the username is already taken.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUserNotFound is returned by user lookups with no match.
	ErrUserNotFound = errors.New("user not found")
	// ErrUnavailable wraps transient storage failures (timeouts, lost
	// connections). Callers may retry with backoff.
	ErrUnavailable = errors.New("storage unavailable")
)

// UserStore holds account records and enforces uniqueness of email and
// username. Email is checked before username, so a request that collides on
// both reports the email conflict.
type UserStore interface {
	// CreateUser hashes u.Password, assigns an ID if unset, and inserts the
	// account. Fails with ErrEmailTaken or ErrUsernameTaken on conflict.
	CreateUser(ctx context.Context, u *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// LeaderboardStore is an append-only ledger of score entries. Entries are
// never updated or deleted, and duplicates are allowed: a player may submit
// any number of scores, including ones below a prior best.
type LeaderboardStore interface {
	// InsertEntry appends one entry, assigning ID and SubmittedAt if unset.
	// Each call is atomic and produces a uniquely identified entry.
	InsertEntry(ctx context.Context, e *models.LeaderboardEntry) error
	// ListEntries returns entries in insertion order; nil mode means all.
	// Ordering for display is the ranking package's job.
	ListEntries(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error)
	// BestScore returns the player's maximum score in a mode, or false if
	// the player has no entries there.
	BestScore(ctx context.Context, userID uuid.UUID, mode models.GameMode) (int, bool, error)
}

// Store is the full storage surface plus one-time demo seeding.
type Store interface {
	UserStore
	LeaderboardStore
	// SeedDemo populates an empty store with the demo dataset. It is a
	// no-op on a non-empty store and safe to call on every startup.
	SeedDemo(ctx context.Context) error
}
