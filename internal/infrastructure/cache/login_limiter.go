package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	MaxFailedAttempts = 5
	LockoutDuration   = 15 * time.Minute
	AttemptWindow     = 15 * time.Minute
)

// LoginLimiter tracks failed logins per account key.
type LoginLimiter interface {
	IsLocked(ctx context.Context, key string) (bool, error)
	RegisterFailure(ctx context.Context, key string) (locked bool, err error)
	Reset(ctx context.Context, key string) error
}

// RedisLoginLimiter counts failures in a window and sets a lock key once
// MaxFailedAttempts is reached.
type RedisLoginLimiter struct {
	client      redis.Cmdable
	maxAttempts int64
	window      time.Duration
	lockout     time.Duration
}

func NewRedisLoginLimiter(client redis.Cmdable) *RedisLoginLimiter {
	return &RedisLoginLimiter{
		client:      client,
		maxAttempts: MaxFailedAttempts,
		window:      AttemptWindow,
		lockout:     LockoutDuration,
	}
}

func attemptKey(key string) string { return "failed_login:" + strings.ToLower(key) }
func lockKey(key string) string    { return "account_locked:" + strings.ToLower(key) }

func (l *RedisLoginLimiter) IsLocked(ctx context.Context, key string) (bool, error) {
	n, err := l.client.Exists(ctx, lockKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf("check lock status: %w", err)
	}
	return n > 0, nil
}

func (l *RedisLoginLimiter) RegisterFailure(ctx context.Context, key string) (bool, error) {
	counter := attemptKey(key)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		// Opens the counting window on the first failure; INCR keeps the TTL.
		pipe.SetNX(ctx, counter, 0, l.window)
		incr = pipe.Incr(ctx, counter)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("increment counter: %w", err)
	}

	if incr.Val() < l.maxAttempts {
		return false, nil
	}

	_, err = l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, lockKey(key), "1", l.lockout)
		pipe.Del(ctx, counter)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("lock account: %w", err)
	}
	return true, nil
}

func (l *RedisLoginLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, attemptKey(key)).Err(); err != nil {
		return fmt.Errorf("reset counter: %w", err)
	}
	return nil
}

// NoopLoginLimiter never locks; used when Redis is unavailable.
type NoopLoginLimiter struct{}

func (NoopLoginLimiter) IsLocked(context.Context, string) (bool, error)        { return false, nil }
func (NoopLoginLimiter) RegisterFailure(context.Context, string) (bool, error) { return false, nil }
func (NoopLoginLimiter) Reset(context.Context, string) error                   { return nil }
