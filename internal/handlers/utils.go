package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jason-s-yu/snake-arena/internal/auth"
	"github.com/jason-s-yu/snake-arena/internal/models"
	"github.com/jason-s-yu/snake-arena/internal/store"
)

// errUnauthenticated is returned by currentUser when no valid identity can
// be resolved from the request. The caller answers 401 with a generic message.
var errUnauthenticated = errors.New("not logged in")

// extractCookieToken extracts a named cookie value from the "Cookie" header,
// or returns empty if not found.
func extractCookieToken(cookieHeader, cookieName string) string {
	parts := strings.Split(cookieHeader, cookieName+"=")
	if len(parts) < 2 {
		return ""
	}
	token := parts[1]
	if idx := strings.Index(token, ";"); idx != -1 {
		token = token[:idx]
	}
	return token
}

// currentUser resolves the request's identity from the auth_token cookie.
// Identity lives entirely in the signed token, never in shared server state,
// so concurrent requests from different users cannot observe each other.
func (s *Server) currentUser(r *http.Request) (*models.User, error) {
	cookieHeader := r.Header.Get("Cookie")
	if !strings.Contains(cookieHeader, "auth_token=") {
		return nil, errUnauthenticated
	}

	userIDStr, err := auth.AuthenticateJWT(extractCookieToken(cookieHeader, "auth_token"))
	if err != nil {
		return nil, errUnauthenticated
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errUnauthenticated
	}

	u, err := s.store.GetUserByID(r.Context(), userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return nil, errUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// setAuthCookie attaches a session token to the response.
func setAuthCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		HttpOnly: true,
		Path:     "/",
		MaxAge:   auth.TokenTTLSec,
	})
}

// clearAuthCookie expires the session cookie client-side.
func clearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		HttpOnly: true,
		Path:     "/",
		MaxAge:   -1,
	})
}

// writeJSON encodes v with the given status code.
func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// storageError answers 503 for transient storage failures and 500 for the
// rest. A failing request never takes the process down.
func (s *Server) storageError(w http.ResponseWriter, err error) {
	s.log.WithError(err).Error("storage error")
	if errors.Is(err, store.ErrUnavailable) {
		http.Error(w, "storage temporarily unavailable", http.StatusServiceUnavailable)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}
