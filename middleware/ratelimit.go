package middleware

import (
	"strconv"
	"time"

	"cinema_reservation/database"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimit is a fixed-window per-IP limiter backed by Redis, so the
// counters hold across replicas. Degrades to a pass-through when Redis
// is down: blocking bookings because a cache died is the wrong trade.
func RateLimit(limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rdb := database.RedisClient
		if rdb == nil {
			return c.Next()
		}

		ctx := c.UserContext()
		key := "ratelimit:" + c.IP() + ":" + strconv.FormatInt(time.Now().Unix()/int64(window.Seconds()), 10)

		var count int64
		pipe := rdb.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
			return c.Next()
		}
		count = incr.Val()

		c.Set("X-RateLimit-Limit", strconv.Itoa(limit))
		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(limit) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status":  "error",
				"message": "rate limit exceeded",
			})
		}
		return c.Next()
	}
}
