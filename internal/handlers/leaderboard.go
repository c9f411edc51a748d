package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jason-s-yu/snake-arena/internal/models"
	"github.com/jason-s-yu/snake-arena/internal/ranking"
)

type submitScoreRequest struct {
	Score int    `json:"score"`
	Mode  string `json:"mode"`
}

// LeaderboardHandler serves the leaderboard collection: GET lists ranked
// entries (optionally filtered by ?mode=), POST submits a score for the
// authenticated player.
func (s *Server) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listLeaderboard(w, r)
	case http.MethodPost:
		s.submitScore(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) listLeaderboard(w http.ResponseWriter, r *http.Request) {
	var mode *models.GameMode
	if raw := r.URL.Query().Get("mode"); raw != "" {
		m, err := models.ParseGameMode(raw)
		if err != nil {
			http.Error(w, "unknown game mode", http.StatusBadRequest)
			return
		}
		mode = &m
	}

	entries, err := s.store.ListEntries(r.Context(), mode)
	if err != nil {
		s.storageError(w, err)
		return
	}

	ranked := ranking.Rank(entries)
	if ranked == nil {
		ranked = []models.LeaderboardEntry{}
	}
	writeJSON(w, http.StatusOK, ranked)
}

// submitScore appends one entry for the session's account. The username is
// copied onto the entry at submission time; the entry never references the
// account afterwards.
func (s *Server) submitScore(w http.ResponseWriter, r *http.Request) {
	user, err := s.currentUser(r)
	if errors.Is(err, errUnauthenticated) {
		http.Error(w, "not logged in", http.StatusUnauthorized)
		return
	}
	if err != nil {
		s.storageError(w, err)
		return
	}

	var req submitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.Score < 0 {
		http.Error(w, "score must be non-negative", http.StatusBadRequest)
		return
	}
	mode, err := models.ParseGameMode(req.Mode)
	if err != nil {
		http.Error(w, "unknown game mode", http.StatusBadRequest)
		return
	}

	entry := models.LeaderboardEntry{
		UserID:   user.ID,
		Username: user.Username,
		Score:    req.Score,
		Mode:     mode,
	}
	if err := s.store.InsertEntry(r.Context(), &entry); err != nil {
		s.storageError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// BestScoreHandler returns the authenticated player's highest score in the
// requested mode.
func (s *Server) BestScoreHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
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

	mode, err := models.ParseGameMode(r.URL.Query().Get("mode"))
	if err != nil {
		http.Error(w, "unknown game mode", http.StatusBadRequest)
		return
	}

	best, found, err := s.store.BestScore(r.Context(), user.ID, mode)
	if err != nil {
		s.storageError(w, err)
		return
	}
	if !found {
		http.Error(w, "no scores recorded", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"mode": mode,
		"best": best,
	})
}
