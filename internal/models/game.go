package models

import "fmt"

// Position is a cell on the game grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction is the snake's current heading.
type Direction string

const (
	DirUp    Direction = "UP"
	DirDown  Direction = "DOWN"
	DirLeft  Direction = "LEFT"
	DirRight Direction = "RIGHT"
)

// ParseDirection validates a client-supplied direction string.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case DirUp, DirDown, DirLeft, DirRight:
		return d, nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

// GameStatus is the lifecycle state of one game snapshot.
// Transitions: idle -> playing -> {paused <-> playing, game-over}.
// A new game produces a new snapshot; a terminated one is never resumed.
type GameStatus string

const (
	StatusIdle     GameStatus = "idle"
	StatusPlaying  GameStatus = "playing"
	StatusPaused   GameStatus = "paused"
	StatusGameOver GameStatus = "game-over"
)

// ParseGameStatus validates a client-supplied status string.
func ParseGameStatus(s string) (GameStatus, error) {
	switch st := GameStatus(s); st {
	case StatusIdle, StatusPlaying, StatusPaused, StatusGameOver:
		return st, nil
	}
	return "", fmt.Errorf("unknown game status %q", s)
}

// Snake holds the snake's body cells, head first.
type Snake struct {
	Body      []Position `json:"body"`
	Direction Direction  `json:"direction"`
}

// GameSnapshot is a point-in-time view of one game, produced fresh per
// spectator query. The server never runs the simulation itself; clients
// report these shapes.
type GameSnapshot struct {
	Snake  Snake      `json:"snake"`
	Food   Position   `json:"food"`
	Score  int        `json:"score"`
	Status GameStatus `json:"status"`
	Mode   GameMode   `json:"mode"`
}

// ActivePlayer pairs an identity with that player's current game.
type ActivePlayer struct {
	ID        string       `json:"id"`
	Username  string       `json:"username"`
	Score     int          `json:"score"`
	Mode      GameMode     `json:"mode"`
	GameState GameSnapshot `json:"gameState"`
}
