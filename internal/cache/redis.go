// Package cache holds the Redis client and the live spectator snapshot
// store. Snapshots are written by playing clients and read on demand by the
// spectator endpoint; nothing is pushed to spectators.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jason-s-yu/snake-arena/internal/models"
)

// Rdb is the global Redis client. Connect it once at application startup.
var Rdb *redis.Client

// snapshotKey is the hash holding one serialized snapshot per player ID.
const snapshotKey = "snake_arena:active"

// SnapshotTTL is how long a published snapshot counts as live. Clients
// re-publish while playing; anything older is treated as abandoned.
const SnapshotTTL = 30 * time.Second

// snapshotRecord wraps an ActivePlayer with its publish time so stale
// entries can be filtered on read.
type snapshotRecord struct {
	Player    models.ActivePlayer `json:"player"`
	UpdatedAt int64               `json:"updated_at"`
}

// ConnectRedis initializes the global Redis client with environment
// variables REDIS_ADDR (default "localhost:6379") and REDIS_DB (default 0).
func ConnectRedis() error {
	addr := getEnv("REDIS_ADDR", "localhost:6379")
	dbIdx := getEnvInt("REDIS_DB", 0)

	Rdb = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   dbIdx,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return nil
}

// PublishSnapshot stores one player's current game state, replacing any
// previous snapshot for that player. The hash expiry is refreshed on every
// write so an idle server eventually drops the whole set.
func PublishSnapshot(ctx context.Context, ap models.ActivePlayer) error {
	rec := snapshotRecord{Player: ap, UpdatedAt: time.Now().Unix()}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	pipe := Rdb.TxPipeline()
	pipe.HSet(ctx, snapshotKey, ap.ID, data)
	pipe.Expire(ctx, snapshotKey, 2*SnapshotTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}
	return nil
}

// FetchSnapshots returns every snapshot published within SnapshotTTL.
// Records that fail to decode are skipped rather than failing the read.
func FetchSnapshots(ctx context.Context) ([]models.ActivePlayer, error) {
	raw, err := Rdb.HGetAll(ctx, snapshotKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshots: %w", err)
	}

	cutoff := time.Now().Add(-SnapshotTTL).Unix()
	var players []models.ActivePlayer
	for _, v := range raw {
		var rec snapshotRecord
		if err := json.Unmarshal([]byte(v), &rec); err != nil {
			continue
		}
		if rec.UpdatedAt < cutoff {
			continue
		}
		players = append(players, rec.Player)
	}
	return players, nil
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt is a helper to parse an environment variable as integer, else a default value.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
