package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jason-s-yu/snake-arena/internal/auth"
	"github.com/jason-s-yu/snake-arena/internal/models"
	"github.com/jason-s-yu/snake-arena/internal/store"
)

// CreateUser hashes the raw credential, checks email then username for
// conflicts, and inserts the account, all in one transaction. The unique
// constraints catch the race where two signups pass the checks concurrently;
// wrapErr maps them back to the same sentinels.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	if u.ID == uuid.Nil {
		id, err := uuid.NewRandom()
		if err != nil {
			return fmt.Errorf("failed to generate user id: %w", err)
		}
		u.ID = id
	}

	hash, err := auth.CreateHash(u.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.Password = hash

	err = pgx.BeginTxFunc(ctx, s.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		var exists int
		err := tx.QueryRow(ctx, `SELECT 1 FROM users WHERE email=$1`, u.Email).Scan(&exists)
		if err == nil {
			return store.ErrEmailTaken
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		err = tx.QueryRow(ctx, `SELECT 1 FROM users WHERE username=$1`, u.Username).Scan(&exists)
		if err == nil {
			return store.ErrUsernameTaken
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO users (id, username, email, password) VALUES ($1, $2, $3, $4)`,
			u.ID, u.Username, u.Email, u.Password)
		return err
	})
	if err != nil {
		err = wrapErr(err)
		if errors.Is(err, store.ErrEmailTaken) || errors.Is(err, store.ErrUsernameTaken) {
			return err
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, `WHERE email=$1`, email)
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getUser(ctx, `WHERE username=$1`, username)
}

func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.getUser(ctx, `WHERE id=$1`, id)
}

func (s *Store) getUser(ctx context.Context, where string, arg interface{}) (*models.User, error) {
	var u models.User
	q := `SELECT id, username, email, password, created_at FROM users ` + where
	err := s.pool.QueryRow(ctx, q, arg).Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, store.ErrUserNotFound
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return &u, nil
}
