// Package db provides the Redis connection used for the contact inbox and
// the task queue.
// This is part of the platform layer and contains no business logic.
package db

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"aiconsult_backend/platform/config"

	"github.com/redis/go-redis/v9"
)

// ParseRedisOptions parses a redis:// or rediss:// URL and applies the
// insecure TLS toggle used by managed Redis providers with self-signed certs.
func ParseRedisOptions(redisURL string, tlsInsecure bool) (*redis.Options, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	if opt.TLSConfig != nil {
		clone := opt.TLSConfig.Clone()
		if tlsInsecure {
			clone.InsecureSkipVerify = true
		}
		opt.TLSConfig = clone
	} else if tlsInsecure {
		opt.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return opt, nil
}

// NewRedis creates a Redis client with production-ready settings and pings it.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if !cfg.IsRedisEnabled() {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := ParseRedisOptions(cfg.GetRedisURL(), cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	opt.PoolSize = 20
	opt.MinIdleConns = 2
	opt.ConnMaxIdleTime = 30 * time.Minute
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}

// HealthChecker reports whether a backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// RedisHealth adapts a go-redis client to HealthChecker.
type RedisHealth struct {
	client redis.UniversalClient
}

// NewRedisHealth wraps client for use by the health endpoint.
func NewRedisHealth(client redis.UniversalClient) *RedisHealth {
	return &RedisHealth{client: client}
}

// Ping round-trips a PING command.
func (h *RedisHealth) Ping(ctx context.Context) error {
	if h == nil || h.client == nil {
		return nil
	}
	return h.client.Ping(ctx).Err()
}
