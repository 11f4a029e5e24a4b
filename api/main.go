package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/rkravchenko/bulletin-board/internal/auth"
	"github.com/rkravchenko/bulletin-board/internal/config"
	"github.com/rkravchenko/bulletin-board/internal/db"
	api "github.com/rkravchenko/bulletin-board/internal/http"
	"github.com/rkravchenko/bulletin-board/internal/http/handlers"
	"github.com/rkravchenko/bulletin-board/internal/http/loginguard"
	rl "github.com/rkravchenko/bulletin-board/internal/http/rate_limiter"
	"github.com/rkravchenko/bulletin-board/internal/repo"
)

// @title Bulletin Board API
// @version 1.0
// @description REST API for users and classified-ad bulletins.
// @host localhost:8080
// @BasePath /
func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("could not connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.RunMigrations(context.Background(), pool); err != nil {
		slog.Error("could not migrate database", "error", err)
		os.Exit(1)
	}

	auth.SetSecret(cfg.JWTSecret)

	rl.Configure(cfg.RateLimitRPS, cfg.RateLimitBurst)
	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	defer stopCleanup()
	go rl.StartVisitorCleanupLoop(cleanupCtx)

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			slog.Error("could not connect to redis", "error", err)
			os.Exit(1)
		}
		defer rdb.Close()
		handlers.SetLoginGuard(loginguard.New(rdb))
	}

	handlers.SetUserRepo(repo.NewPostgresUserRepository(pool))
	handlers.SetBulletinRepo(repo.NewPostgresBulletinRepository(pool))
	handlers.SetMetricsRepo(repo.NewPostgresMetricsRepository(pool))
	handlers.SetHealthCheck(pool.PingContext)

	r := api.NewRouter()
	slog.Info("server listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
