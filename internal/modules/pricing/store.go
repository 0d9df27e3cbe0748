// README: Quote caches; Redis strings with TTL, or an in-process map when Redis is not configured.
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const quoteKeyPrefix = "pricing:quote:%s"

type Cache interface {
	Get(ctx context.Context, symbol string) (Quote, bool, error)
	Set(ctx context.Context, q Quote, ttl time.Duration) error
}

type RedisCache struct {
	redis *redis.Client
}

func NewRedisCache(redis *redis.Client) *RedisCache {
	return &RedisCache{redis: redis}
}

func (c *RedisCache) Get(ctx context.Context, symbol string) (Quote, bool, error) {
	val, err := c.redis.Get(ctx, quoteKey(symbol)).Bytes()
	if err == redis.Nil {
		return Quote{}, false, nil
	}
	if err != nil {
		return Quote{}, false, err
	}
	var q Quote
	if err := json.Unmarshal(val, &q); err != nil {
		return Quote{}, false, fmt.Errorf("decode quote %s: %w", symbol, err)
	}
	return q, true, nil
}

func (c *RedisCache) Set(ctx context.Context, q Quote, ttl time.Duration) error {
	b, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, quoteKey(q.Symbol), b, ttl).Err()
}

func quoteKey(symbol string) string {
	return fmt.Sprintf(quoteKeyPrefix, symbol)
}

type memoryEntry struct {
	quote     Quote
	expiresAt time.Time
}

// MemoryCache is safe for concurrent use.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: map[string]memoryEntry{}, now: time.Now}
}

func (c *MemoryCache) Get(_ context.Context, symbol string) (Quote, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[symbol]
	if !ok {
		return Quote{}, false, nil
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, symbol)
		return Quote{}, false, nil
	}
	return e.quote, true, nil
}

func (c *MemoryCache) Set(_ context.Context, q Quote, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[q.Symbol] = memoryEntry{quote: q, expiresAt: c.now().Add(ttl)}
	return nil
}
