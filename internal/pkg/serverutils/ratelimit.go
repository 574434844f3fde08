package serverutils

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimiter is a sliding-window limiter backed by a Redis sorted set per
// client key.
type RateLimiter struct {
	rdb *redis.Client
}

func NewRateLimiter(rdb *redis.Client) *RateLimiter {
	return &RateLimiter{rdb: rdb}
}

// Allow reports whether one more request fits in the window.
func (l *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := time.Now().UnixMilli()
	windowStart := now - window.Milliseconds()

	pipe := l.rdb.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	countCmd := pipe.ZCard(ctx, key)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	if countCmd.Val() >= int64(limit) {
		return false, nil
	}

	l.rdb.ZAdd(ctx, key, redis.Z{
		Score:  float64(now),
		Member: fmt.Sprintf("%d", now),
	})
	l.rdb.Expire(ctx, key, window*2)

	return true, nil
}

// RateLimitMiddleware limits requests per client IP. Redis being down fails
// open; rate limiting is protection, not availability.
func RateLimitMiddleware(limiter *RateLimiter, limit int, window time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if limiter == nil || limit <= 0 {
			return ctx.Next()
		}

		key := fmt.Sprintf("ratelimit:%s:%s", ctx.IP(), ctx.Path())
		allowed, err := limiter.Allow(ctx.Context(), key, limit, window)
		if err != nil {
			return ctx.Next()
		}
		if !allowed {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(ErrorResponse(429, "Too many requests"))
		}
		return ctx.Next()
	}
}
