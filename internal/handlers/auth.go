package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jason-s-yu/snake-arena/internal/auth"
	"github.com/jason-s-yu/snake-arena/internal/models"
	"github.com/jason-s-yu/snake-arena/internal/store"
)

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupHandler creates an account and logs it in. Email is checked before
// username, so a request colliding on both reports the email conflict.
//
// Request payload:
//
//	{ "username": "alice", "email": "alice@example.com", "password": "pw" }
//
// Responds with the public account view; the session token is set via the
// auth_token cookie.
func (s *Server) SignupHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "username, email and password are required", http.StatusBadRequest)
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	err := s.store.CreateUser(r.Context(), &user)
	if errors.Is(err, store.ErrEmailTaken) {
		http.Error(w, "email already exists", http.StatusConflict)
		return
	}
	if errors.Is(err, store.ErrUsernameTaken) {
		http.Error(w, "username already taken", http.StatusConflict)
		return
	}
	if err != nil {
		s.storageError(w, err)
		return
	}

	token, err := auth.CreateJWT(user.ID.String())
	if err != nil {
		s.log.WithError(err).Error("failed to create jwt")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	setAuthCookie(w, token)
	writeJSON(w, http.StatusOK, user.Public())
}

// LoginHandler verifies credentials and establishes a session. A missing
// account and a wrong password produce the same generic failure, so callers
// cannot enumerate registered emails.
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	user, err := s.store.GetUserByEmail(r.Context(), req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	if err != nil {
		s.storageError(w, err)
		return
	}

	match, err := auth.VerifyPassword(req.Password, user.Password)
	if err != nil || !match {
		if err != nil {
			s.log.WithError(err).Warn("credential hash verification failed")
		}
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.CreateJWT(user.ID.String())
	if err != nil {
		s.log.WithError(err).Error("failed to create jwt")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	setAuthCookie(w, token)
	writeJSON(w, http.StatusOK, user.Public())
}

// LogoutHandler expires the session cookie. The token itself is stateless,
// so there is nothing to clear server-side.
func (s *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	clearAuthCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Successful logout"})
}

// MeHandler returns the account the request's session token resolves to.
func (s *Server) MeHandler(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, user.Public())
}
