package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jason-s-yu/snake-arena/internal/auth"
	"github.com/jason-s-yu/snake-arena/internal/models"
	"github.com/jason-s-yu/snake-arena/internal/store"
)

// InsertEntry appends one score entry. Each call inserts a single uniquely
// keyed row inside its own transaction, so concurrent submissions cannot be
// lost or merged.
func (s *Store) InsertEntry(ctx context.Context, e *models.LeaderboardEntry) error {
	if e.ID == uuid.Nil {
		id, err := uuid.NewRandom()
		if err != nil {
			return fmt.Errorf("failed to generate entry id: %w", err)
		}
		e.ID = id
	}
	if e.SubmittedAt.IsZero() {
		e.SubmittedAt = time.Now().UTC()
	}

	err := pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO leaderboard_entries (id, user_id, username, score, mode, submitted_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			e.ID, e.UserID, e.Username, e.Score, e.Mode, e.SubmittedAt)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to insert entry: %w", wrapErr(err))
	}
	return nil
}

// ListEntries returns entries in submission order (seq ascending). Display
// ordering is the ranking package's job.
func (s *Store) ListEntries(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error) {
	q := `SELECT id, user_id, username, score, mode, submitted_at
	      FROM leaderboard_entries`
	args := []interface{}{}
	if mode != nil {
		q += ` WHERE mode=$1`
		args = append(args, *mode)
	}
	q += ` ORDER BY seq ASC`

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, wrapErr(err)
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Username, &e.Score, &e.Mode, &e.SubmittedAt); err != nil {
			return nil, wrapErr(err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err)
	}
	return entries, nil
}

// BestScore returns the player's maximum score in a mode, or false if the
// player has no entries there. MAX over zero rows yields NULL, hence the
// pointer scan.
func (s *Store) BestScore(ctx context.Context, userID uuid.UUID, mode models.GameMode) (int, bool, error) {
	var best *int
	err := s.pool.QueryRow(ctx,
		`SELECT MAX(score) FROM leaderboard_entries WHERE user_id=$1 AND mode=$2`,
		userID, mode).Scan(&best)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, wrapErr(err)
	}
	if best == nil {
		return 0, false, nil
	}
	return *best, true, nil
}

// SeedDemo populates an empty database with the demo dataset. The existence
// check and all inserts share one transaction, so concurrent startups cannot
// double-seed. It is a no-op whenever any user row exists.
func (s *Store) SeedDemo(ctx context.Context) error {
	err := pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		var count int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hash, err := auth.CreateHash(store.DemoPassword)
		if err != nil {
			return fmt.Errorf("failed to hash demo password: %w", err)
		}

		ids := make(map[string]uuid.UUID, len(store.DemoUsers))
		for _, du := range store.DemoUsers {
			id := uuid.New()
			ids[du.Username] = id
			if _, err := tx.Exec(ctx,
				`INSERT INTO users (id, username, email, password) VALUES ($1, $2, $3, $4)`,
				id, du.Username, du.Email, hash); err != nil {
				return err
			}
		}

		for _, de := range store.DemoEntries {
			if _, err := tx.Exec(ctx,
				`INSERT INTO leaderboard_entries (id, user_id, username, score, mode, submitted_at)
				 VALUES ($1, $2, $3, $4, $5, NOW())`,
				uuid.New(), ids[de.Username], de.Username, de.Score, de.Mode); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed demo data: %w", wrapErr(err))
	}
	return nil
}
