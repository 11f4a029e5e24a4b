package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	handler "github.com/rkravchenko/bulletin-board/internal/http/handlers"
)

func TestCreateBulletinHandler_Valid(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	createUser(r, "alice", "secret", "alice@example.com")

	w := createBulletin(r, "sell bike", "cheap", "alice", "secret")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.CreateBulletinResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Id <= 0 {
		t.Errorf("expected a positive id, got %d", resp.Id)
	}
	if resp.Owner != "alice" {
		t.Errorf("expected owner %q, got %q", "alice", resp.Owner)
	}
	if resp.Header != "sell bike" || resp.Description != "cheap" {
		t.Errorf("unexpected bulletin content: %+v", resp)
	}
	if resp.CreationTime <= 0 {
		t.Errorf("expected an epoch creation_time, got %d", resp.CreationTime)
	}

	getW := doJSON(r, http.MethodGet, fmt.Sprintf("/bulletin/%d", resp.Id), nil)
	if getW.Code != http.StatusOK {
		t.Fatalf("expected 200 OK on get, got %d", getW.Code)
	}

	var fetched handler.BulletinResponse
	if err := json.NewDecoder(getW.Body).Decode(&fetched); err != nil {
		t.Fatalf("error decoding bulletin: %v", err)
	}
	if fetched.Owner != "alice" {
		t.Errorf("expected owner %q, got %q", "alice", fetched.Owner)
	}
	if _, err := time.Parse(time.RFC3339, fetched.CreationTime); err != nil {
		t.Errorf("expected an ISO-8601 creation_time, got %q", fetched.CreationTime)
	}
}

func TestCreateBulletinHandler_WrongPassword(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	createUser(r, "alice", "secret", "alice@example.com")

	w := createBulletin(r, "sell bike", "cheap", "alice", "wrong")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d", w.Code)
	}
	if desc := decodeStringError(t, w); desc != "invalid credentials" {
		t.Errorf("unexpected description %q", desc)
	}
	if bulletinRepo.Count() != 0 {
		t.Errorf("expected no bulletin rows, got %d", bulletinRepo.Count())
	}
}

func TestCreateBulletinHandler_UnknownUser(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := createBulletin(r, "sell bike", "cheap", "nobody", "secret")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d", w.Code)
	}
	if bulletinRepo.Count() != 0 {
		t.Errorf("expected no bulletin rows, got %d", bulletinRepo.Count())
	}
}

func TestCreateBulletinHandler_DuplicateHeader(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	createUser(r, "alice", "secret", "alice@example.com")
	createBulletin(r, "sell bike", "cheap", "alice", "secret")

	w := createBulletin(r, "sell bike", "almost new", "alice", "secret")
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict, got %d", w.Code)
	}
	if desc := decodeStringError(t, w); desc != "bulletin already exists" {
		t.Errorf("unexpected description %q", desc)
	}
	if bulletinRepo.Count() != 1 {
		t.Errorf("expected a single bulletin row, got %d", bulletinRepo.Count())
	}
}

func TestCreateBulletinHandler_ValidationErrors(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := doJSON(r, http.MethodPost, "/bulletin", handler.CreateBulletinRequest{Username: "alice"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}

	errs := decodeFieldErrors(t, w)
	for _, field := range []string{"header", "description", "password"} {
		if !hasFieldError(errs, field) {
			t.Errorf("expected error for field %q, got %v", field, errs)
		}
	}
	if bulletinRepo.Count() != 0 {
		t.Errorf("expected no bulletin rows, got %d", bulletinRepo.Count())
	}
}

func TestGetBulletinHandler_NotFound(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	w := doJSON(r, http.MethodGet, "/bulletin/4242", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 Not Found, got %d", w.Code)
	}
	if desc := decodeStringError(t, w); desc != "bulletin not found" {
		t.Errorf("unexpected description %q", desc)
	}
}

func TestDeleteBulletinHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	createUser(r, "alice", "secret", "alice@example.com")

	var created handler.CreateBulletinResponse
	if err := json.NewDecoder(createBulletin(r, "sell bike", "cheap", "alice", "secret").Body).Decode(&created); err != nil {
		t.Fatalf("error decoding create response: %v", err)
	}

	w := doJSON(r, http.MethodDelete, fmt.Sprintf("/bulletin/%d", created.Id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var status handler.StatusResponse
	if err := json.NewDecoder(w.Body).Decode(&status); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if status.Status != "success" {
		t.Errorf("expected status %q, got %q", "success", status.Status)
	}

	if w := doJSON(r, http.MethodGet, fmt.Sprintf("/bulletin/%d", created.Id), nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after deletion, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodDelete, fmt.Sprintf("/bulletin/%d", created.Id), nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on repeated delete, got %d", w.Code)
	}
}

func TestStatsHandler(t *testing.T) {
	t.Cleanup(clearAll)
	r := newRouter()

	createUser(r, "alice", "secret", "alice@example.com")
	createUser(r, "bob", "secret", "bob@example.com")
	createBulletin(r, "sell bike", "cheap", "alice", "secret")
	createBulletin(r, "sell car", "fast", "alice", "secret")
	createBulletin(r, "buy boat", "any", "bob", "secret")

	w := doJSON(r, http.MethodGet, "/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var overview struct {
		TotalUsers     int `json:"total_users"`
		TotalBulletins int `json:"total_bulletins"`
		BusiestAuthor  struct {
			Username      string `json:"username"`
			BulletinCount int    `json:"bulletin_count"`
		} `json:"busiest_author"`
	}
	if err := json.NewDecoder(w.Body).Decode(&overview); err != nil {
		t.Fatalf("error decoding overview: %v", err)
	}
	if overview.TotalUsers != 2 {
		t.Errorf("expected 2 users, got %d", overview.TotalUsers)
	}
	if overview.TotalBulletins != 3 {
		t.Errorf("expected 3 bulletins, got %d", overview.TotalBulletins)
	}
	if overview.BusiestAuthor.Username != "alice" || overview.BusiestAuthor.BulletinCount != 2 {
		t.Errorf("expected alice with 2 bulletins, got %+v", overview.BusiestAuthor)
	}
}
