package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GameMode is the boundary rule-set a score was achieved under.
type GameMode string

const (
	// ModeWalls ends the game on boundary collision.
	ModeWalls GameMode = "walls"
	// ModePassThrough wraps the snake around the board edges.
	ModePassThrough GameMode = "pass-through"
)

// ParseGameMode validates a client-supplied mode string.
func ParseGameMode(s string) (GameMode, error) {
	switch m := GameMode(s); m {
	case ModeWalls, ModePassThrough:
		return m, nil
	}
	return "", fmt.Errorf("unknown game mode %q", s)
}

// LeaderboardEntry is one immutable score record. Username is a snapshot of
// the submitter's name at submission time, not a live reference to the
// account, so historical entries survive account changes. SubmittedAt is
// display-only and never participates in ranking.
type LeaderboardEntry struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"-"`
	Username    string    `json:"username"`
	Score       int       `json:"score"`
	Mode        GameMode  `json:"mode"`
	SubmittedAt time.Time `json:"date"`
}
