// Copyright (c) 2026 Manara. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/manaracms/manara/internal/platform/constants"
)

// RedisAttemptLimiter implements [AttemptLimiter] on a shared Redis instance
// so the reset throttle holds across server replicas.
type RedisAttemptLimiter struct {
	client *redis.Client
}

func NewRedisAttemptLimiter(client *redis.Client) *RedisAttemptLimiter {
	return &RedisAttemptLimiter{client: client}
}

// RegisterResetAttempt increments the per-address counter. The window starts
// with the first attempt and expires as a whole, so the limit is per fixed
// window rather than sliding.
func (limiter *RedisAttemptLimiter) RegisterResetAttempt(context context.Context, email string) (int64, error) {
	key := constants.RedisPrefixResetAttempts + strings.ToLower(email)

	count, err := limiter.client.Incr(context, key).Result()
	if err != nil {
		return 0, fmt.Errorf("auth: reset attempt counter failed: %w", err)
	}

	if count == 1 {
		if err := limiter.client.Expire(context, key, constants.ResetAttemptWindow).Err(); err != nil {
			return 0, fmt.Errorf("auth: reset attempt expiry failed: %w", err)
		}
	}

	return count, nil
}
