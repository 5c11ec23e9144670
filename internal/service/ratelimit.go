package service

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/msomdec/youth-portal/internal/ttlmap"
)

// TokenBucket is a per-key rate limiter. Each key gets its own
// rate.Limiter; keys unused for ten minutes are dropped by Run.
type TokenBucket struct {
	limiters *ttlmap.Map[*rate.Limiter]
	limit    rate.Limit
	burst    int
}

// NewTokenBucket creates a limiter allowing perMinute events per key with
// the given burst. New keys start with a full bucket.
func NewTokenBucket(perMinute float64, burst int) *TokenBucket {
	return &TokenBucket{
		limiters: ttlmap.New[*rate.Limiter](10 * time.Minute),
		limit:    rate.Limit(perMinute / 60),
		burst:    burst,
	}
}

// Allow reports whether key may proceed, consuming one token if so.
func (tb *TokenBucket) Allow(key string) bool {
	return tb.limiter(key).Allow()
}

// AllowAt is Allow evaluated at t. Intended for tests.
func (tb *TokenBucket) AllowAt(key string, t time.Time) bool {
	return tb.limiter(key).AllowN(t, 1)
}

func (tb *TokenBucket) limiter(key string) *rate.Limiter {
	return tb.limiters.Get(key, func() *rate.Limiter {
		return rate.NewLimiter(tb.limit, tb.burst)
	})
}

// Run drops stale keys every five minutes until ctx is cancelled.
func (tb *TokenBucket) Run(ctx context.Context) {
	tb.limiters.Run(ctx, 5*time.Minute)
}
