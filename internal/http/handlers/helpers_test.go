package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/rkravchenko/bulletin-board/internal/http"
	handler "github.com/rkravchenko/bulletin-board/internal/http/handlers"
	rl "github.com/rkravchenko/bulletin-board/internal/http/rate_limiter"
	"github.com/rkravchenko/bulletin-board/internal/repo"
)

var (
	userRepo     *repo.InMemoryUserRepository
	bulletinRepo *repo.InMemoryBulletinRepository
)

func init() {
	// Keep the per-IP limiter out of the way; all httptest requests share
	// one client address.
	rl.Configure(10000, 10000)

	setupTestRepos()
}

func setupTestRepos() {
	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	bulletinRepo = repo.NewInMemoryBulletinRepository(userRepo)
	handler.SetBulletinRepo(bulletinRepo)
	userRepo.AttachBulletins(bulletinRepo)

	metricsRepo := repo.NewInMemoryMetricsRepository()
	metricsRepo.SetRepositories(userRepo, bulletinRepo)
	handler.SetMetricsRepo(metricsRepo)
}

func clearAll() {
	userRepo.Clear()
	bulletinRepo.Clear()
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createUser(r http.Handler, username, password, email string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/users", handler.CreateUserRequest{
		Username: username,
		Password: password,
		Email:    email,
	})
}

func createBulletin(r http.Handler, header, description, username, password string) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/bulletin", handler.CreateBulletinRequest{
		Header:      header,
		Description: description,
		Username:    username,
		Password:    password,
	})
}

func decodeStringError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var resp struct {
		Status      string `json:"status"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding error envelope: %v", err)
	}
	if resp.Status != "error" {
		t.Errorf("expected envelope status %q, got %q", "error", resp.Status)
	}
	return resp.Description
}

func decodeFieldErrors(t *testing.T, w *httptest.ResponseRecorder) []handler.FieldError {
	t.Helper()

	var resp struct {
		Status      string               `json:"status"`
		Description []handler.FieldError `json:"description"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding field-error envelope: %v", err)
	}
	if resp.Status != "error" {
		t.Errorf("expected envelope status %q, got %q", "error", resp.Status)
	}
	return resp.Description
}

func hasFieldError(errs []handler.FieldError, field string) bool {
	for _, fe := range errs {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func newRouter() http.Handler {
	return api.NewRouter()
}
