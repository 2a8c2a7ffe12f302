package cache

import (
	"context"
	"encoding/json"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"

	"github.com/redis/go-redis/v9"
)

const (
	settingKeyPrefix       = "backoffice:setting:"
	defaultSettingCacheTTL = 30 * time.Second
)

// settingCache implements service.SettingCache on Redis. A nil client makes
// every operation a no-op, so the service layer works unchanged when the
// cache is disabled.
type settingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSettingCache is the constructor for settingCache.
func NewSettingCache(client *redis.Client, cfg *config.Config) service.SettingCache {
	ttl := defaultSettingCacheTTL
	if cfg.Redis != nil && cfg.Redis.SettingCacheTTL > 0 {
		ttl = cfg.Redis.SettingCacheTTL
	}

	return &settingCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached setting, or (nil, nil) on a miss.
func (c *settingCache) Get(ctx context.Context, name string) (*entity.Setting, error) {
	if c.client == nil {
		return nil, nil
	}

	payload, err := c.client.Get(ctx, settingKeyPrefix+name).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read setting from cache")
	}

	var setting entity.Setting
	if err := json.Unmarshal(payload, &setting); err != nil {
		return nil, errors.Wrap(err, "failed to decode cached setting")
	}

	return &setting, nil
}

// Set stores the setting under its name.
func (c *settingCache) Set(ctx context.Context, setting *entity.Setting) error {
	if c.client == nil || setting == nil {
		return nil
	}

	payload, err := json.Marshal(setting)
	if err != nil {
		return errors.Wrap(err, "failed to encode setting for cache")
	}

	if err := c.client.Set(ctx, settingKeyPrefix+setting.Name, payload, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write setting to cache")
	}

	return nil
}

// Invalidate drops the cached setting after a write.
func (c *settingCache) Invalidate(ctx context.Context, name string) error {
	if c.client == nil {
		return nil
	}

	if err := c.client.Del(ctx, settingKeyPrefix+name).Err(); err != nil {
		return errors.Wrap(err, "failed to invalidate cached setting")
	}

	return nil
}
