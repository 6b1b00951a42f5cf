package database

import (
	"context"
	"fmt"
	"time"

	"cinema_reservation/config"

	"github.com/redis/go-redis/v9"
)

// RedisClient is nil when Redis is unreachable; rate limiting degrades
// to a pass-through in that case.
var RedisClient *redis.Client

func ConnectRedis() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		host := config.ConfigDefault("REDIS_HOST", "localhost")
		port := config.ConfigDefault("REDIS_PORT", "6379")
		addr = host + ":" + port
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		fmt.Println("Redis unreachable, rate limiting disabled:", err)
		return
	}

	RedisClient = client
	fmt.Println("Connection Opened to Redis")
}
