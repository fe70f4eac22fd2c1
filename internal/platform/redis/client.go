package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"clubledger/internal/platform/config"
)

// Client is the go-redis client shared by the rate limiter and the event
// stream sink.
type Client struct {
	*redis.Client
}

// New connects to cfg.URL and pings it within cfg.DialTimeout. An empty URL
// means redis is not configured and yields a nil client.
func New(ctx context.Context, cfg config.RedisConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opts)
	pingCtx := ctx
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &Client{Client: client}, nil
}

// Health pings the server; readiness probes call it.
func (c *Client) Health(ctx context.Context) error {
	return c.Ping(ctx).Err()
}
