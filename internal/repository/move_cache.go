package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const moveCachePrefix = "ttt:move:"

// MoveCache remembers engine answers. The engine is deterministic for a given
// position and depth, so entries never go stale; the TTL only bounds memory.
type MoveCache struct {
	log   *zap.SugaredLogger
	redis *redis.Client
	ttl   time.Duration
}

func NewMoveCache(log *zap.SugaredLogger, redis *redis.Client, ttl time.Duration) *MoveCache {
	return &MoveCache{
		log:   log,
		redis: redis,
		ttl:   ttl,
	}
}

func moveCacheKey(key string, depth int) string {
	return fmt.Sprintf("%s%d:%s", moveCachePrefix, depth, key)
}

func (c *MoveCache) GetMove(ctx context.Context, key string, depth int) (int, bool, error) {
	v, err := c.redis.Get(ctx, moveCacheKey(key, depth)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	idx, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, fmt.Errorf("corrupt cache entry %q: %w", v, err)
	}
	return idx, true, nil
}

func (c *MoveCache) SaveMove(ctx context.Context, key string, depth int, idx int) error {
	return c.redis.Set(ctx, moveCacheKey(key, depth), idx, c.ttl).Err()
}
