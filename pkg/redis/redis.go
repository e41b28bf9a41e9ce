package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Config holds what is needed to reach a Redis server.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Connect builds a pooled client and pings it.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis: addr is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return client, nil
}
