package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jason-s-yu/snake-arena/internal/models"
	"github.com/jason-s-yu/snake-arena/internal/spectator"
)

// ActivePlayersHandler lists the games currently visible to spectators.
// No authentication required.
func (s *Server) ActivePlayersHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	players, err := s.feed.ListActive(r.Context())
	if err != nil {
		s.log.WithError(err).Error("spectator feed read failed")
		http.Error(w, "spectator feed unavailable", http.StatusServiceUnavailable)
		return
	}
	if players == nil {
		players = []models.ActivePlayer{}
	}
	writeJSON(w, http.StatusOK, players)
}

// PublishSnapshotHandler accepts the authenticated player's current game
// state for the spectator feed. Answers 501 when the configured feed serves
// fixed data only.
func (s *Server) PublishSnapshotHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, err := s.currentUser(r)
	if errors.Is(err, errUnauthenticated) {
		http.Error(w, "not logged in", http.StatusUnauthorized)
		return
	}
	if err != nil {
		s.storageError(w, err)
		return
	}

	pub, ok := s.feed.(spectator.Publisher)
	if !ok {
		http.Error(w, "snapshot publishing not enabled", http.StatusNotImplemented)
		return
	}

	var snap models.GameSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if _, err := models.ParseGameMode(string(snap.Mode)); err != nil {
		http.Error(w, "unknown game mode", http.StatusBadRequest)
		return
	}
	if _, err := models.ParseGameStatus(string(snap.Status)); err != nil {
		http.Error(w, "unknown game status", http.StatusBadRequest)
		return
	}
	if _, err := models.ParseDirection(string(snap.Snake.Direction)); err != nil {
		http.Error(w, "unknown direction", http.StatusBadRequest)
		return
	}

	ap := models.ActivePlayer{
		ID:        user.ID.String(),
		Username:  user.Username,
		Score:     snap.Score,
		Mode:      snap.Mode,
		GameState: snap,
	}
	if err := pub.Publish(r.Context(), ap); err != nil {
		s.log.WithError(err).Error("snapshot publish failed")
		http.Error(w, "spectator feed unavailable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "snapshot published"})
}

// RootHandler answers the API welcome message.
func (s *Server) RootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Welcome to Snake Arena API.",
	})
}
