package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rkravchenko/bulletin-board/internal/models"
	"github.com/rkravchenko/bulletin-board/internal/repo"
)

// CreateUserHandler godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "username, password and email"
// @Success 200 {object} CreateUserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users [post]
func CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if fieldErrors := validateStruct(req); len(fieldErrors) > 0 {
		writeError(w, http.StatusBadRequest, fieldErrors)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	created, err := userRepo.Create(models.User{
		Username:     req.Username,
		PasswordHash: string(hashed),
		Email:        req.Email,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			writeError(w, http.StatusConflict, "user already exists")
			return
		}
		slog.Error("could not create user", "error", err)
		writeError(w, http.StatusInternalServerError, "could not create user")
		return
	}

	// The stored hash is part of the historical response contract.
	_ = writeJSON(w, http.StatusOK, CreateUserResponse{
		Id:           created.ID,
		CreationTime: created.CreationTime.Unix(),
		Password:     created.PasswordHash,
	})
}

// GetUserHandler godoc
// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [get]
func GetUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	user, err := userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		slog.Error("could not fetch user", "error", err, "user_id", id)
		writeError(w, http.StatusInternalServerError, "could not fetch user")
		return
	}

	_ = writeJSON(w, http.StatusOK, UserResponse{
		Id:           user.ID,
		Username:     user.Username,
		CreationTime: user.CreationTime.Format(time.RFC3339),
	})
}

// patchableUserFields is the allowlist applied to PATCH /users/{id}. The
// predecessor of this API assigned any caller-supplied key onto the row;
// everything outside this set is now rejected and logged.
var patchableUserFields = map[string]bool{
	"username": true,
	"password": true,
	"email":    true,
}

// UpdateUserHandler godoc
// @Summary Partially update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param fields body map[string]string true "subset of username, password, email"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users/{id} [patch]
func UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	var payload map[string]any
	if err := readJSON(w, r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	user, err := userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		slog.Error("could not fetch user", "error", err, "user_id", id)
		writeError(w, http.StatusInternalServerError, "could not fetch user")
		return
	}

	var fieldErrors []FieldError
	for key, raw := range payload {
		if !patchableUserFields[key] {
			slog.Warn("rejected non-updatable field in user patch", "field", key, "user_id", id)
			fieldErrors = append(fieldErrors, FieldError{Field: key, Description: key + " is not updatable"})
			continue
		}

		value, ok := raw.(string)
		if !ok || value == "" {
			fieldErrors = append(fieldErrors, FieldError{Field: key, Description: key + " must be a non-empty string"})
			continue
		}

		switch key {
		case "username":
			user.Username = value
		case "password":
			hashed, err := bcrypt.GenerateFromPassword([]byte(value), bcrypt.DefaultCost)
			if err != nil {
				writeError(w, http.StatusInternalServerError, "failed to hash password")
				return
			}
			user.PasswordHash = string(hashed)
		case "email":
			user.Email = value
		}
	}
	if len(fieldErrors) > 0 {
		writeError(w, http.StatusBadRequest, fieldErrors)
		return
	}

	if _, err := userRepo.Update(user); err != nil {
		switch {
		case errors.Is(err, repo.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "user not found")
		case errors.Is(err, repo.ErrDuplicateUsername):
			writeError(w, http.StatusConflict, "user already exists")
		default:
			slog.Error("could not update user", "error", err, "user_id", id)
			writeError(w, http.StatusInternalServerError, "could not update user")
		}
		return
	}

	_ = writeJSON(w, http.StatusOK, StatusResponse{Status: "success"})
}

// DeleteUserHandler godoc
// @Summary Delete a user and their bulletins
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [delete]
func DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := userRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		slog.Error("could not delete user", "error", err, "user_id", id)
		writeError(w, http.StatusInternalServerError, "could not delete user")
		return
	}

	_ = writeJSON(w, http.StatusOK, StatusResponse{Status: "success"})
}
