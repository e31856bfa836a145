package middleware

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"videothingy/caption-board/internal/limiter"
	"videothingy/caption-board/internal/metrics"
)

// HeaderRateLimitRemaining tells clients how many fetching requests they have left in the window.
const HeaderRateLimitRemaining = "X-RateLimit-Remaining"

// Limiter decides whether a request keyed by client identity may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) limiter.Decision
}

// RateLimit rejects requests with 429 once the client IP is over its budget.
func RateLimit(l Limiter, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := l.Allow(c.UserContext(), "limit:"+c.IP())
		if decision.Remaining >= 0 {
			c.Set(HeaderRateLimitRemaining, strconv.Itoa(decision.Remaining))
		}

		if !decision.Allowed {
			m.RequestsTotal.WithLabelValues("blocked").Inc()
			return c.Status(fiber.StatusTooManyRequests).SendString("Too Many Requests")
		}

		m.RequestsTotal.WithLabelValues("allowed").Inc()
		return c.Next()
	}
}
