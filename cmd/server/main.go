// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/snake-arena/internal/auth"
	"github.com/jason-s-yu/snake-arena/internal/cache"
	"github.com/jason-s-yu/snake-arena/internal/handlers"
	"github.com/jason-s-yu/snake-arena/internal/middleware"
	"github.com/jason-s-yu/snake-arena/internal/spectator"
	"github.com/jason-s-yu/snake-arena/internal/store/postgres"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)

	auth.Init()

	ctx := context.Background()
	db, err := postgres.Connect(ctx)
	if err != nil {
		logger.Fatalf("database connect: %v", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		logger.Fatalf("schema bootstrap: %v", err)
	}
	// Demo seeding is a no-op on a non-empty database; a failure here is
	// not fatal to traffic serving.
	if err := db.SeedDemo(ctx); err != nil {
		logger.WithError(err).Warn("demo seed skipped")
	}

	// The spectator feed is static demo data unless Redis is configured.
	var feed spectator.Feed = spectator.StaticFeed{}
	if os.Getenv("REDIS_ADDR") != "" {
		if err := cache.ConnectRedis(); err != nil {
			logger.WithError(err).Warn("redis unavailable, using static spectator feed")
		} else {
			feed = spectator.RedisFeed{}
			logger.Info("spectator feed backed by redis")
		}
	}

	srv := handlers.NewServer(db, feed, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/", srv.RootHandler)

	// auth endpoints
	mux.HandleFunc("/auth/signup", srv.SignupHandler)
	mux.HandleFunc("/auth/login", srv.LoginHandler)
	mux.HandleFunc("/auth/logout", srv.LogoutHandler)
	mux.HandleFunc("/auth/me", srv.MeHandler)

	// leaderboard endpoints
	mux.HandleFunc("/leaderboard", srv.LeaderboardHandler)
	mux.HandleFunc("/leaderboard/best", srv.BestScoreHandler)

	// spectator endpoints
	mux.HandleFunc("/spectator/active", srv.ActivePlayersHandler)
	mux.HandleFunc("/spectator/publish", srv.PublishSnapshotHandler)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, middleware.LogMiddleware(logger)(mux)); err != nil {
		logger.Fatalf("server exited: %v", err)
	}
}
