package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/jason-s-yu/snake-arena/internal/auth"
	"github.com/jason-s-yu/snake-arena/internal/models"
	"github.com/jason-s-yu/snake-arena/internal/store"
)

func TestCreateUserDuplicates(t *testing.T) {
	s := New()
	ctx := context.Background()

	alice := models.User{Username: "alice", Email: "alice@x.com", Password: "pw1"}
	if err := s.CreateUser(ctx, &alice); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	// Same email, different username: email conflict.
	dupEmail := models.User{Username: "bob", Email: "alice@x.com", Password: "pw2"}
	if err := s.CreateUser(ctx, &dupEmail); !errors.Is(err, store.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// Same username, different email: username conflict.
	dupName := models.User{Username: "alice", Email: "other@x.com", Password: "pw3"}
	if err := s.CreateUser(ctx, &dupName); !errors.Is(err, store.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}

	// Colliding on both reports the email conflict (email checked first).
	dupBoth := models.User{Username: "alice", Email: "alice@x.com", Password: "pw4"}
	if err := s.CreateUser(ctx, &dupBoth); !errors.Is(err, store.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken for double collision, got %v", err)
	}
}

func TestCreateUserHashesCredential(t *testing.T) {
	s := New()
	ctx := context.Background()

	u := models.User{Username: "alice", Email: "alice@x.com", Password: "pw1"}
	if err := s.CreateUser(ctx, &u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	stored, err := s.GetUserByEmail(ctx, "alice@x.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if stored.Password == "pw1" {
		t.Fatalf("raw credential must never be stored")
	}
	ok, err := auth.VerifyPassword("pw1", stored.Password)
	if err != nil || !ok {
		t.Fatalf("stored hash must verify the raw credential (ok=%v, err=%v)", ok, err)
	}
}

func TestUserLookups(t *testing.T) {
	s := New()
	ctx := context.Background()

	u := models.User{Username: "alice", Email: "alice@x.com", Password: "pw"}
	if err := s.CreateUser(ctx, &u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	byEmail, err := s.GetUserByEmail(ctx, "alice@x.com")
	if err != nil {
		t.Fatalf("lookup by email failed: %v", err)
	}
	byName, err := s.GetUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("lookup by username failed: %v", err)
	}
	byID, err := s.GetUserByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("lookup by id failed: %v", err)
	}
	if byEmail.ID != u.ID || byName.ID != u.ID || byID.ID != u.ID {
		t.Fatalf("lookups disagree on identity")
	}

	if _, err := s.GetUserByEmail(ctx, "nobody@x.com"); !errors.Is(err, store.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestListEntriesOrderAndFilter(t *testing.T) {
	s := New()
	ctx := context.Background()

	u := models.User{Username: "alice", Email: "alice@x.com", Password: "pw"}
	if err := s.CreateUser(ctx, &u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	scores := []struct {
		score int
		mode  models.GameMode
	}{
		{100, models.ModeWalls},
		{200, models.ModePassThrough},
		{100, models.ModeWalls}, // duplicate score is a distinct entry
		{50, models.ModeWalls},
	}
	for _, sc := range scores {
		e := models.LeaderboardEntry{UserID: u.ID, Username: u.Username, Score: sc.score, Mode: sc.mode}
		if err := s.InsertEntry(ctx, &e); err != nil {
			t.Fatalf("InsertEntry failed: %v", err)
		}
	}

	all, err := s.ListEntries(ctx, nil)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(all))
	}
	// Insertion order preserved.
	if all[0].Score != 100 || all[1].Score != 200 || all[3].Score != 50 {
		t.Fatalf("entries out of insertion order: %+v", all)
	}

	walls := models.ModeWalls
	filtered, err := s.ListEntries(ctx, &walls)
	if err != nil {
		t.Fatalf("filtered ListEntries failed: %v", err)
	}
	if len(filtered) != 3 {
		t.Fatalf("expected 3 walls entries, got %d", len(filtered))
	}
	for _, e := range filtered {
		if e.Mode != models.ModeWalls {
			t.Fatalf("filter leaked mode %s", e.Mode)
		}
	}
	if len(all) < len(filtered) {
		t.Fatalf("unfiltered list must be a superset by count")
	}
}

func TestBestScore(t *testing.T) {
	s := New()
	ctx := context.Background()

	u := models.User{Username: "alice", Email: "alice@x.com", Password: "pw"}
	if err := s.CreateUser(ctx, &u); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if _, found, err := s.BestScore(ctx, u.ID, models.ModeWalls); err != nil || found {
		t.Fatalf("expected no best score yet (found=%v, err=%v)", found, err)
	}

	for _, sc := range []int{120, 450, 300} {
		e := models.LeaderboardEntry{UserID: u.ID, Username: u.Username, Score: sc, Mode: models.ModeWalls}
		if err := s.InsertEntry(ctx, &e); err != nil {
			t.Fatalf("InsertEntry failed: %v", err)
		}
	}

	best, found, err := s.BestScore(ctx, u.ID, models.ModeWalls)
	if err != nil || !found {
		t.Fatalf("BestScore failed (found=%v, err=%v)", found, err)
	}
	if best != 450 {
		t.Fatalf("expected best 450, got %d", best)
	}

	// Other mode is untouched.
	if _, found, _ := s.BestScore(ctx, u.ID, models.ModePassThrough); found {
		t.Fatalf("pass-through must have no entries")
	}
}

func TestSeedDemoIdempotent(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.SeedDemo(ctx); err != nil {
		t.Fatalf("first SeedDemo failed: %v", err)
	}
	first, err := s.ListEntries(ctx, nil)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(first) != len(store.DemoEntries) {
		t.Fatalf("expected %d seeded entries, got %d", len(store.DemoEntries), len(first))
	}

	if err := s.SeedDemo(ctx); err != nil {
		t.Fatalf("second SeedDemo failed: %v", err)
	}
	second, err := s.ListEntries(ctx, nil)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("seeding twice changed entry count: %d -> %d", len(first), len(second))
	}

	// Seeded accounts are retrievable and carry a usable credential.
	u, err := s.GetUserByEmail(ctx, "player1@example.com")
	if err != nil {
		t.Fatalf("seeded user lookup failed: %v", err)
	}
	ok, err := auth.VerifyPassword(store.DemoPassword, u.Password)
	if err != nil || !ok {
		t.Fatalf("seeded credential must verify (ok=%v, err=%v)", ok, err)
	}
}
