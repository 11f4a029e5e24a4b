package http

import (
	"net"
	"net/http"
	"strings"

	"github.com/rkravchenko/bulletin-board/internal/auth"
	"github.com/rkravchenko/bulletin-board/internal/http/handlers"
	rl "github.com/rkravchenko/bulletin-board/internal/http/rate_limiter"
)

// RateLimitMiddleware applies a per-client token bucket keyed by IP.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !rl.GetVisitor(ip).Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"status":"error","description":"rate limit exceeded"}`))
			return
		}

		next.ServeHTTP(w, r)
	})
}

// AuthMiddleware requires a valid bearer token and stashes the token's user
// id in the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			writeAuthError(w, "missing or invalid token")
			return
		}

		userID, err := auth.ParseToken(strings.TrimPrefix(authz, "Bearer "))
		if err != nil {
			writeAuthError(w, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(handlers.ContextWithUserID(r.Context(), userID)))
	})
}

func writeAuthError(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"status":"error","description":"` + description + `"}`))
}
