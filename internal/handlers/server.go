package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/snake-arena/internal/spectator"
	"github.com/jason-s-yu/snake-arena/internal/store"
)

// Server holds the storage and spectator feed behind the HTTP surface.
// Everything is constructor-injected so tests run against the in-memory
// store and a static feed.
type Server struct {
	store store.Store
	feed  spectator.Feed
	log   *logrus.Logger
}

func NewServer(st store.Store, feed spectator.Feed, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.New()
	}
	return &Server{
		store: st,
		feed:  feed,
		log:   logger,
	}
}
