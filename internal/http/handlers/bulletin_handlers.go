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

// GetBulletinHandler godoc
// @Summary Get bulletin by ID
// @Tags bulletins
// @Produce json
// @Param id path int true "Bulletin ID"
// @Success 200 {object} BulletinResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /bulletin/{id} [get]
func GetBulletinHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bulletin ID")
		return
	}

	bulletin, err := bulletinRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrBulletinNotFound) {
			writeError(w, http.StatusNotFound, "bulletin not found")
			return
		}
		slog.Error("could not fetch bulletin", "error", err, "bulletin_id", id)
		writeError(w, http.StatusInternalServerError, "could not fetch bulletin")
		return
	}

	_ = writeJSON(w, http.StatusOK, BulletinResponse{
		Id:           bulletin.ID,
		Header:       bulletin.Header,
		Description:  bulletin.Description,
		CreationTime: bulletin.CreationTime.Format(time.RFC3339),
		Owner:        bulletin.OwnerUsername,
	})
}

// CreateBulletinHandler godoc
// @Summary Create a bulletin as the authenticated author
// @Description Verifies the supplied password against the stored hash of the
// @Description named user, then creates the bulletin owned by that user.
// @Tags bulletins
// @Accept json
// @Produce json
// @Param bulletin body CreateBulletinRequest true "header, description and author credentials"
// @Success 200 {object} CreateBulletinResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /bulletin [post]
func CreateBulletinHandler(w http.ResponseWriter, r *http.Request) {
	client := clientIP(r)
	if guard.Banned(r.Context(), client) {
		writeError(w, http.StatusTooManyRequests, "too many failed attempts, try again later")
		return
	}

	var req CreateBulletinRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}

	if fieldErrors := validateStruct(req); len(fieldErrors) > 0 {
		writeError(w, http.StatusBadRequest, fieldErrors)
		return
	}

	user, err := userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			// Same response as a wrong password so the endpoint does not
			// reveal which usernames exist.
			guard.RecordFailure(r.Context(), client)
			writeError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		slog.Error("could not fetch user", "error", err)
		writeError(w, http.StatusInternalServerError, "could not fetch user")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		guard.RecordFailure(r.Context(), client)
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	guard.Reset(r.Context(), client)

	created, err := bulletinRepo.Create(models.Bulletin{
		Header:      req.Header,
		Description: req.Description,
		UserID:      user.ID,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateHeader) {
			writeError(w, http.StatusConflict, "bulletin already exists")
			return
		}
		slog.Error("could not create bulletin", "error", err)
		writeError(w, http.StatusInternalServerError, "could not create bulletin")
		return
	}

	_ = writeJSON(w, http.StatusOK, CreateBulletinResponse{
		Id:           created.ID,
		Header:       created.Header,
		Description:  created.Description,
		CreationTime: created.CreationTime.Unix(),
		Owner:        user.Username,
	})
}

// DeleteBulletinHandler godoc
// @Summary Delete a bulletin
// @Tags bulletins
// @Produce json
// @Param id path int true "Bulletin ID"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /bulletin/{id} [delete]
func DeleteBulletinHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid bulletin ID")
		return
	}

	if err := bulletinRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrBulletinNotFound) {
			writeError(w, http.StatusNotFound, "bulletin not found")
			return
		}
		slog.Error("could not delete bulletin", "error", err, "bulletin_id", id)
		writeError(w, http.StatusInternalServerError, "could not delete bulletin")
		return
	}

	_ = writeJSON(w, http.StatusOK, StatusResponse{Status: "success"})
}
