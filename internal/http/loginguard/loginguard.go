// Package loginguard tracks failed credential checks per client and
// temporarily bans clients that keep failing. State lives in Redis so bans
// survive restarts and are shared between replicas. A nil *Guard is valid
// and disables the feature.
package loginguard

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	maxStrikes  = 5
	strikeTTL   = 10 * time.Minute
	banDuration = 15 * time.Minute
)

type Guard struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Guard {
	return &Guard{rdb: rdb}
}

func strikeKey(client string) string { return fmt.Sprintf("loginguard:strikes:%s", client) }
func banKey(client string) string    { return fmt.Sprintf("loginguard:ban:%s", client) }

// Banned reports whether the client is currently locked out.
func (g *Guard) Banned(ctx context.Context, client string) bool {
	if g == nil {
		return false
	}
	n, err := g.rdb.Exists(ctx, banKey(client)).Result()
	if err != nil {
		slog.Warn("login guard unavailable", "error", err)
		return false
	}
	return n > 0
}

// RecordFailure counts one failed credential check. Reaching the strike
// limit within the window bans the client for banDuration.
func (g *Guard) RecordFailure(ctx context.Context, client string) {
	if g == nil {
		return
	}
	strikes, err := g.rdb.Incr(ctx, strikeKey(client)).Result()
	if err != nil {
		slog.Warn("login guard unavailable", "error", err)
		return
	}
	if strikes == 1 {
		g.rdb.Expire(ctx, strikeKey(client), strikeTTL)
	}
	if strikes >= maxStrikes {
		if err := g.rdb.Set(ctx, banKey(client), strikes, banDuration).Err(); err != nil {
			slog.Warn("login guard unavailable", "error", err)
			return
		}
		g.rdb.Del(ctx, strikeKey(client))
		slog.Warn("client banned after repeated failed credentials",
			"client", client, "strikes", strikes, "duration", banDuration)
	}
}

// Reset clears accumulated strikes after a successful credential check.
func (g *Guard) Reset(ctx context.Context, client string) {
	if g == nil {
		return
	}
	g.rdb.Del(ctx, strikeKey(client))
}
