package redis

import (
	"context"
	"encoding/json"
	"time"

	"auth-srv/internal/model"
	"auth-srv/internal/user/repository"
	pkgRedis "auth-srv/pkg/redis"
)

func (c *implCache) GetSummary(ctx context.Context, email string) (model.UserSummary, error) {
	raw, err := c.redis.Get(ctx, summaryKey(email))
	if pkgRedis.IsNil(err) {
		return model.UserSummary{}, repository.ErrCacheMiss
	}
	if err != nil {
		return model.UserSummary{}, err
	}

	var summary model.UserSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		// A corrupt entry is treated as a miss and dropped.
		c.l.Warnf(ctx, "user.repository.redis.GetSummary: Failed to decode cached summary: %v", err)
		_ = c.redis.Delete(ctx, summaryKey(email))
		return model.UserSummary{}, repository.ErrCacheMiss
	}

	return summary, nil
}

func (c *implCache) SaveSummary(ctx context.Context, summary model.UserSummary, ttl time.Duration) error {
	b, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, summaryKey(summary.Email), b, ttl)
}

func (c *implCache) DeleteSummary(ctx context.Context, email string) error {
	return c.redis.Delete(ctx, summaryKey(email))
}
