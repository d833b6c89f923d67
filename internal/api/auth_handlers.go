package api

import (
	"errors"
	"net/http"

	"github.com/Shuvikm/sonyliv-clone/internal/apperrors"
	"github.com/Shuvikm/sonyliv-clone/internal/auth"
	"github.com/Shuvikm/sonyliv-clone/internal/config"
	"github.com/Shuvikm/sonyliv-clone/internal/models"
)

const (
	msgInvalidCredentials = "Invalid credentials. Try demo@sonyliv.com / demo123"
	msgLoginFailed        = "Login failed. Try demo@sonyliv.com / demo123"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Message string             `json:"message"`
	Token   string             `json:"token"`
	User    models.UserProfile `json:"user"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeFailure(w, r, err, "Registration failed")
		return
	}
	result, err := s.auth.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		writeFailure(w, r, err, "Registration failed")
		return
	}
	writeJSON(w, http.StatusCreated, authResponse{
		Message: "User registered successfully",
		Token:   result.Token,
		User:    result.User,
	})
}

// handleLogin answers every failure with 401 and the demo-login hint.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusUnauthorized, msgLoginFailed)
		return
	}
	result, err := s.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, &apperrors.ErrInvalidCredentials{}) {
			writeError(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		logger := config.GetLogger()
		logger.Warn().Err(err).Msg("Login failed")
		writeError(w, http.StatusUnauthorized, msgLoginFailed)
		return
	}

	message := "Login successful"
	if result.User.ID == auth.DemoUserID {
		message = "Login successful (Demo Mode)"
	}
	writeJSON(w, http.StatusOK, authResponse{Message: message, Token: result.Token, User: result.User})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	profile, err := s.auth.Profile(r.Context(), claims.UserID)
	if err != nil {
		writeFailure(w, r, err, "Failed to load profile")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": profile})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.auth.Logout(bearerToken(r)); err != nil {
		writeFailure(w, r, err, "Logout failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
