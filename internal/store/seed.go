package store

import "github.com/jason-s-yu/snake-arena/internal/models"

// DemoPassword is the credential all demo accounts are seeded with.
const DemoPassword = "password123"

// DemoUser is one seeded account, referenced from DemoEntries by username.
type DemoUser struct {
	Username string
	Email    string
}

// DemoEntry is one seeded leaderboard entry.
type DemoEntry struct {
	Username string
	Score    int
	Mode     models.GameMode
}

// DemoUsers and DemoEntries make a fresh deployment immediately browsable.
// Both store implementations consume the same dataset so tests exercise the
// exact data production starts with.
var DemoUsers = []DemoUser{
	{Username: "player1", Email: "player1@example.com"},
	{Username: "speedrunner", Email: "speedrunner@example.com"},
	{Username: "snakemaster", Email: "snakemaster@example.com"},
	{Username: "gamer99", Email: "gamer99@example.com"},
	{Username: "prosnake", Email: "prosnake@example.com"},
	{Username: "ninja", Email: "ninja@example.com"},
	{Username: "champion", Email: "champion@example.com"},
	{Username: "rookie", Email: "rookie@example.com"},
}

var DemoEntries = []DemoEntry{
	{Username: "snakemaster", Score: 450, Mode: models.ModeWalls},
	{Username: "speedrunner", Score: 380, Mode: models.ModeWalls},
	{Username: "player1", Score: 320, Mode: models.ModePassThrough},
	{Username: "gamer99", Score: 290, Mode: models.ModeWalls},
	{Username: "prosnake", Score: 260, Mode: models.ModePassThrough},
	{Username: "ninja", Score: 410, Mode: models.ModePassThrough},
	{Username: "champion", Score: 505, Mode: models.ModeWalls},
	{Username: "rookie", Score: 150, Mode: models.ModeWalls},
	{Username: "speedrunner", Score: 340, Mode: models.ModePassThrough},
	{Username: "ninja", Score: 275, Mode: models.ModeWalls},
}
