package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rkravchenko/bulletin-board/internal/auth"
	"github.com/rkravchenko/bulletin-board/internal/repo"
)

// LoginHandler godoc
// @Summary Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	client := clientIP(r)
	if guard.Banned(r.Context(), client) {
		writeError(w, http.StatusTooManyRequests, "too many failed attempts, try again later")
		return
	}

	var creds CredentialsRequest
	if err := readJSON(w, r, &creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if fieldErrors := validateStruct(creds); len(fieldErrors) > 0 {
		writeError(w, http.StatusBadRequest, fieldErrors)
		return
	}

	user, err := userRepo.GetByUsername(creds.Username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			guard.RecordFailure(r.Context(), client)
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		slog.Error("could not fetch user", "error", err)
		writeError(w, http.StatusInternalServerError, "could not fetch user")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		guard.RecordFailure(r.Context(), client)
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	guard.Reset(r.Context(), client)

	token, err := auth.GenerateToken(user)
	if err != nil {
		slog.Error("could not generate token", "error", err)
		writeError(w, http.StatusInternalServerError, "could not generate token")
		return
	}

	_ = writeJSON(w, http.StatusOK, LoginResult{Token: token})
}

// MeHandler godoc
// @Summary Get the profile of the token's owner
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/me [get]
func MeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing or invalid token")
		return
	}

	user, err := userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		slog.Error("could not fetch user", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "could not fetch user")
		return
	}

	_ = writeJSON(w, http.StatusOK, UserResponse{
		Id:           user.ID,
		Username:     user.Username,
		CreationTime: user.CreationTime.Format(time.RFC3339),
	})
}
