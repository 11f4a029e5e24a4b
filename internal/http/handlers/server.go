package handlers

import (
	"context"

	"github.com/rkravchenko/bulletin-board/internal/http/loginguard"
	"github.com/rkravchenko/bulletin-board/internal/repo"
)

var (
	userRepo     repo.UserRepository
	bulletinRepo repo.BulletinRepository
	metricsRepo  repo.MetricsRepository

	guard       *loginguard.Guard
	healthCheck func(ctx context.Context) error
)

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetBulletinRepo(r repo.BulletinRepository) {
	bulletinRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

// SetLoginGuard installs the failed-credential tracker. A nil guard
// disables lockouts.
func SetLoginGuard(g *loginguard.Guard) {
	guard = g
}

// SetHealthCheck installs the store liveness probe used by the health
// endpoint, typically (*sql.DB).PingContext.
func SetHealthCheck(fn func(ctx context.Context) error) {
	healthCheck = fn
}
