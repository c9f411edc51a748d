// Package memory is an in-memory store.Store used by tests. It is not a
// deployment option; production always runs on the postgres store.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jason-s-yu/snake-arena/internal/auth"
	"github.com/jason-s-yu/snake-arena/internal/models"
	"github.com/jason-s-yu/snake-arena/internal/store"
)

// Store keeps accounts and entries behind a single mutex. Entries is a
// plain slice, so insertion order is the slice order.
type Store struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*models.User
	entries []models.LeaderboardEntry
}

func New() *Store {
	return &Store{
		users: make(map[uuid.UUID]*models.User),
	}
}

// CreateUser mirrors the postgres store: hash the credential, check email
// before username, then insert.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return store.ErrEmailTaken
		}
	}
	for _, existing := range s.users {
		if existing.Username == u.Username {
			return store.ErrUsernameTaken
		}
	}

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hash, err := auth.CreateHash(u.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.Password = hash
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, store.ErrUserNotFound
}

func (s *Store) InsertEntry(ctx context.Context, e *models.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.SubmittedAt.IsZero() {
		e.SubmittedAt = time.Now().UTC()
	}
	s.entries = append(s.entries, *e)
	return nil
}

func (s *Store) ListEntries(ctx context.Context, mode *models.GameMode) ([]models.LeaderboardEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.LeaderboardEntry
	for _, e := range s.entries {
		if mode == nil || e.Mode == *mode {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *Store) BestScore(ctx context.Context, userID uuid.UUID, mode models.GameMode) (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	best, found := 0, false
	for _, e := range s.entries {
		if e.UserID == userID && e.Mode == mode && (!found || e.Score > best) {
			best, found = e.Score, true
		}
	}
	return best, found, nil
}

// SeedDemo loads the shared demo dataset into an empty store; no-op otherwise.
func (s *Store) SeedDemo(ctx context.Context) error {
	s.mu.Lock()
	empty := len(s.users) == 0 && len(s.entries) == 0
	s.mu.Unlock()
	if !empty {
		return nil
	}

	ids := make(map[string]uuid.UUID, len(store.DemoUsers))
	for _, du := range store.DemoUsers {
		u := models.User{
			Username: du.Username,
			Email:    du.Email,
			Password: store.DemoPassword,
		}
		if err := s.CreateUser(ctx, &u); err != nil {
			return fmt.Errorf("seed user %s: %w", du.Username, err)
		}
		ids[du.Username] = u.ID
	}
	for _, de := range store.DemoEntries {
		e := models.LeaderboardEntry{
			UserID:   ids[de.Username],
			Username: de.Username,
			Score:    de.Score,
			Mode:     de.Mode,
		}
		if err := s.InsertEntry(ctx, &e); err != nil {
			return fmt.Errorf("seed entry for %s: %w", de.Username, err)
		}
	}
	return nil
}
