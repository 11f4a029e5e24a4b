package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rkravchenko/bulletin-board/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(RateLimitMiddleware)

	r.Get("/healthz", handlers.HealthHandler)
	r.Get("/stats", handlers.StatsHandler)
	r.Post("/login", handlers.LoginHandler)

	r.With(AuthMiddleware).Get("/users/me", handlers.MeHandler)
	r.Post("/users", handlers.CreateUserHandler)
	r.Get("/users/{id}", handlers.GetUserHandler)
	r.Patch("/users/{id}", handlers.UpdateUserHandler)
	r.Delete("/users/{id}", handlers.DeleteUserHandler)

	r.Post("/bulletin", handlers.CreateBulletinHandler)
	r.Get("/bulletin/{id}", handlers.GetBulletinHandler)
	r.Delete("/bulletin/{id}", handlers.DeleteBulletinHandler)

	return r
}
