// Package limiter implements a Redis-backed sliding window rate limiter.
package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Decision is the limiter's answer for one request.
// Remaining is negative when the budget is unknown because Redis could not be asked.
type Decision struct {
	Allowed   bool
	Remaining int
}

// RateLimiter admits at most limit requests per key within window.
type RateLimiter struct {
	rdb    redis.Scripter
	limit  int
	window time.Duration
	log    logrus.FieldLogger
	now    func() time.Time
}

// NewRateLimiter creates a RateLimiter.
func NewRateLimiter(rdb redis.Scripter, limit int, window time.Duration, log logrus.FieldLogger) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		log:    log,
		now:    time.Now,
	}
}

// Allow decides whether the request identified by key is admitted.
// If Redis is unavailable the limiter fails open.
func (rl *RateLimiter) Allow(ctx context.Context, key string) Decision {
	res, err := admitScript.Run(ctx, rl.rdb, []string{key},
		rl.now().UnixMilli(), rl.window.Milliseconds(), rl.limit, uuid.NewString()).Int64Slice()
	if err == nil && len(res) != 2 {
		err = fmt.Errorf("unexpected script reply %v", res)
	}
	if err != nil {
		rl.log.WithError(err).WithField("key", key).Warn("Rate limiter script failed, allowing request")
		return Decision{Allowed: true, Remaining: -1}
	}

	return Decision{Allowed: res[0] == 1, Remaining: int(res[1])}
}
