package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Mukhsinh/JEMPOL-sub007/internal/infra/logger"
	"github.com/Mukhsinh/JEMPOL-sub007/internal/ports"
)

// KeyPrefix namespaces every counter this limiter writes
const KeyPrefix = "report:ratelimit:"

// Config configuration untuk rate limiting
type Config struct {
	Enabled  bool
	RedisURL string
	Requests int
	Window   time.Duration
}

// redisLimiter is a fixed-window counter per key stored in Redis
type redisLimiter struct {
	client   *redis.Client
	log      logger.Logger
	requests int
	window   time.Duration
}

// New returns a Redis backed limiter, or a limiter that always allows when
// rate limiting is disabled.
func New(ctx context.Context, config Config, log logger.Logger) (ports.RateLimiter, error) {
	if !config.Enabled {
		log.Info(ctx, "Rate limiting disabled", nil)
		return NewNoop(), nil
	}

	opt, err := redis.ParseURL(config.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info(ctx, "Rate limiting service initialized", map[string]interface{}{
		"requests": config.Requests,
		"window":   config.Window.String(),
	})
	return NewWithClient(client, config.Requests, config.Window, log), nil
}

// NewWithClient wraps an existing Redis client
func NewWithClient(client *redis.Client, requests int, window time.Duration, log logger.Logger) ports.RateLimiter {
	return &redisLimiter{client: client, log: log, requests: requests, window: window}
}

// Allow menambah counter dan mengecek apakah limit telah tercapai
func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	key = KeyPrefix + key

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		l.log.Error(ctx, "Failed to increment rate limit counter", err, map[string]interface{}{"key": key})
		return false, fmt.Errorf("failed to increment rate limit: %w", err)
	}
	// first hit opens the window
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	allowed := count <= int64(l.requests)
	l.log.Debug(ctx, "Rate limit check", map[string]interface{}{
		"key":     key,
		"current": count,
		"limit":   l.requests,
		"allowed": allowed,
	})
	return allowed, nil
}

// noopLimiter implementasi no-op untuk ketika rate limiting disabled
type noopLimiter struct{}

func NewNoop() ports.RateLimiter { return noopLimiter{} }

func (noopLimiter) Allow(context.Context, string) (bool, error) { return true, nil }
