package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jason-s-yu/snake-arena/internal/models"
)

// publishRecorder is a Feed that accepts publishes and replays them.
type publishRecorder struct {
	published *[]models.ActivePlayer
}

func newPublishRecorder() publishRecorder {
	return publishRecorder{published: &[]models.ActivePlayer{}}
}

func (p publishRecorder) ListActive(ctx context.Context) ([]models.ActivePlayer, error) {
	return *p.published, nil
}

func (p publishRecorder) Publish(ctx context.Context, ap models.ActivePlayer) error {
	*p.published = append(*p.published, ap)
	return nil
}

func TestActivePlayersStaticFeed(t *testing.T) {
	srv, _ := newTestServer()

	w := get(srv.ActivePlayersHandler, "/spectator/active", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var players []models.ActivePlayer
	if err := json.Unmarshal(w.Body.Bytes(), &players); err != nil {
		t.Fatalf("failed to decode active players: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("static feed serves 2 demo games, got %d", len(players))
	}
	for _, p := range players {
		if p.GameState.Status != models.StatusPlaying {
			t.Fatalf("demo snapshots are mid-game, got status %s", p.GameState.Status)
		}
		if len(p.GameState.Snake.Body) == 0 {
			t.Fatalf("snapshot snake must have a body")
		}
		if _, err := models.ParseGameMode(string(p.Mode)); err != nil {
			t.Fatalf("snapshot carries invalid mode: %v", err)
		}
	}
}

func TestActivePlayersNoAuthRequired(t *testing.T) {
	srv, _ := newTestServer()

	// Deliberately no cookie at all.
	w := get(srv.ActivePlayersHandler, "/spectator/active", "")
	if w.Code != http.StatusOK {
		t.Fatalf("spectating must not require auth, got %d", w.Code)
	}
}

func TestPublishSnapshotOnStaticFeed(t *testing.T) {
	srv, _ := newTestServer()
	token := signupAndLogin(t, srv, "alice", "alice@x.com", "pw1")

	body := `{
		"snake": {"body": [{"x":5,"y":5},{"x":4,"y":5}], "direction": "RIGHT"},
		"food": {"x":9,"y":2},
		"score": 40,
		"status": "playing",
		"mode": "walls"
	}`

	// Static feed cannot accept snapshots.
	w := postJSON(srv.PublishSnapshotHandler, "/spectator/publish", body, token)
	if w.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501 on static feed, got %d", w.Code)
	}

	// But auth is still checked first.
	w2 := postJSON(srv.PublishSnapshotHandler, "/spectator/publish", body, "")
	if w2.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", w2.Code)
	}
}

func TestPublishSnapshotValidation(t *testing.T) {
	srv, _ := newTestServer()
	rec := newPublishRecorder()
	srv.feed = rec
	token := signupAndLogin(t, srv, "alice", "alice@x.com", "pw1")

	bad := `{
		"snake": {"body": [{"x":5,"y":5}], "direction": "SIDEWAYS"},
		"food": {"x":9,"y":2},
		"score": 40,
		"status": "playing",
		"mode": "walls"
	}`
	w := postJSON(srv.PublishSnapshotHandler, "/spectator/publish", bad, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid direction: expected 400, got %d", w.Code)
	}
	if len(*rec.published) != 0 {
		t.Fatalf("rejected snapshot must not be published")
	}

	good := `{
		"snake": {"body": [{"x":5,"y":5},{"x":4,"y":5}], "direction": "RIGHT"},
		"food": {"x":9,"y":2},
		"score": 40,
		"status": "playing",
		"mode": "walls"
	}`
	w2 := postJSON(srv.PublishSnapshotHandler, "/spectator/publish", good, token)
	if w2.Code != http.StatusOK {
		t.Fatalf("publish: expected 200, got %d %s", w2.Code, w2.Body.String())
	}
	if len(*rec.published) != 1 {
		t.Fatalf("expected 1 published snapshot, got %d", len(*rec.published))
	}
	ap := (*rec.published)[0]
	if ap.Username != "alice" || ap.Score != 40 || ap.Mode != models.ModeWalls {
		t.Fatalf("published snapshot misattributed: %+v", ap)
	}

	// The feed now serves the published game to spectators.
	w3 := get(srv.ActivePlayersHandler, "/spectator/active", "")
	var players []models.ActivePlayer
	if err := json.Unmarshal(w3.Body.Bytes(), &players); err != nil {
		t.Fatalf("failed to decode active players: %v", err)
	}
	if len(players) != 1 || players[0].Username != "alice" {
		t.Fatalf("expected alice's game in the feed, got %+v", players)
	}
}
