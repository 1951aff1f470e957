package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/clinica/appointments-api/internal/domain/center"
	"github.com/clinica/appointments-api/internal/models"
)

const centersKey = "clinica:centers"

// CenterCache is a read-through cache in front of the center registry.
// Redis failures are logged and the call falls through to the store.
type CenterCache struct {
	next   center.Repository
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func NewCenterCache(next center.Repository, client *redis.Client, ttl time.Duration, log *zap.Logger) *CenterCache {
	return &CenterCache{next: next, client: client, ttl: ttl, log: log}
}

func (c *CenterCache) ListCenters(ctx context.Context) ([]models.Center, error) {
	if cached, ok := c.load(ctx); ok {
		return cached, nil
	}

	centers, err := c.next.ListCenters(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, centers)
	return centers, nil
}

// GetCenterByName answers hits from the cached list; a miss always asks the
// store so a center added after caching is still found.
func (c *CenterCache) GetCenterByName(ctx context.Context, name string) (*models.Center, error) {
	if cached, ok := c.load(ctx); ok {
		for _, ct := range cached {
			if ct.Name == name {
				return &ct, nil
			}
		}
	}
	return c.next.GetCenterByName(ctx, name)
}

func (c *CenterCache) SeedCenters(ctx context.Context, centers []models.Center) (bool, error) {
	seeded, err := c.next.SeedCenters(ctx, centers)
	if err != nil || !seeded {
		return seeded, err
	}
	c.Invalidate(ctx)
	return true, nil
}

func (c *CenterCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, centersKey).Err(); err != nil {
		c.log.Warn("center cache invalidate failed", zap.Error(err))
	}
}

func (c *CenterCache) load(ctx context.Context) ([]models.Center, bool) {
	raw, err := c.client.Get(ctx, centersKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("center cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var centers []models.Center
	if err := json.Unmarshal(raw, &centers); err != nil {
		c.log.Warn("center cache entry corrupt", zap.Error(err))
		return nil, false
	}
	return centers, true
}

func (c *CenterCache) store(ctx context.Context, centers []models.Center) {
	raw, err := json.Marshal(centers)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, centersKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn("center cache write failed", zap.Error(err))
	}
}

var _ center.Repository = (*CenterCache)(nil)
