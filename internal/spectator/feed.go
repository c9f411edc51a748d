// Package spectator supplies snapshots of in-progress games to
// non-participants. The feed is an injectable data source so the static
// demo payload and a real snapshot store are interchangeable without
// touching the leaderboard or ranking code.
package spectator

import (
	"context"

	"github.com/jason-s-yu/snake-arena/internal/cache"
	"github.com/jason-s-yu/snake-arena/internal/models"
)

// Feed lists the currently active players. No authentication is required to
// read it.
type Feed interface {
	ListActive(ctx context.Context) ([]models.ActivePlayer, error)
}

// Publisher is implemented by feeds that accept snapshots from playing
// clients.
type Publisher interface {
	Publish(ctx context.Context, ap models.ActivePlayer) error
}

// StaticFeed serves a fixed pair of demo games. It is the default when no
// Redis address is configured.
type StaticFeed struct{}

func (StaticFeed) ListActive(ctx context.Context) ([]models.ActivePlayer, error) {
	return []models.ActivePlayer{
		{
			ID:       "1",
			Username: "speedrunner",
			Score:    120,
			Mode:     models.ModeWalls,
			GameState: models.GameSnapshot{
				Snake: models.Snake{
					Body:      []models.Position{{X: 10, Y: 10}},
					Direction: models.DirRight,
				},
				Food:   models.Position{X: 15, Y: 10},
				Score:  120,
				Status: models.StatusPlaying,
				Mode:   models.ModeWalls,
			},
		},
		{
			ID:       "2",
			Username: "snakemaster",
			Score:    180,
			Mode:     models.ModePassThrough,
			GameState: models.GameSnapshot{
				Snake: models.Snake{
					Body:      []models.Position{{X: 8, Y: 8}},
					Direction: models.DirUp,
				},
				Food:   models.Position{X: 8, Y: 3},
				Score:  180,
				Status: models.StatusPlaying,
				Mode:   models.ModePassThrough,
			},
		},
	}, nil
}

// RedisFeed serves snapshots published by playing clients, held in Redis
// with a freshness window. Requires cache.ConnectRedis to have succeeded.
type RedisFeed struct{}

func (RedisFeed) ListActive(ctx context.Context) ([]models.ActivePlayer, error) {
	return cache.FetchSnapshots(ctx)
}

func (RedisFeed) Publish(ctx context.Context, ap models.ActivePlayer) error {
	return cache.PublishSnapshot(ctx, ap)
}
