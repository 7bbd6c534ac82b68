package tenant

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces tenant snapshots in a shared Redis instance.
const redisKeyPrefix = "tenant:subdomain:"

// redisCache shares resolved snapshots across processes. Entries are keyed
// by slug only; nothing request-scoped is ever stored, so one tenant's
// resolution can never leak into another tenant's request path.
type redisCache struct {
	client redis.UniversalClient
}

// NewRedisCache returns a Cache backed by the given Redis client. The
// client's lifecycle stays with the caller; Close is a no-op.
func NewRedisCache(client redis.UniversalClient) Cache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, slug string) (*Tenant, bool) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+slug).Bytes()
	if err != nil {
		return nil, false
	}
	var t Tenant
	if err := json.Unmarshal(raw, &t); err != nil {
		// Corrupt entry: drop it so the next request re-resolves.
		c.client.Del(ctx, redisKeyPrefix+slug)
		return nil, false
	}
	return &t, true
}

func (c *redisCache) Set(ctx context.Context, slug string, tenant *Tenant, ttl time.Duration) {
	raw, err := json.Marshal(tenant)
	if err != nil {
		return
	}
	c.client.Set(ctx, redisKeyPrefix+slug, raw, ttl)
}

func (c *redisCache) Delete(ctx context.Context, slug string) {
	c.client.Del(ctx, redisKeyPrefix+slug)
}

func (c *redisCache) Close() error { return nil }
