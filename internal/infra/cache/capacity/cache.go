package capacity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

const (
	keyPrefix = "capacity"
	scanBatch = 200
)

// Cache кэш остатка вместимости в Redis
// Ключ: capacity:{roomID}:{start}:{end}. Значение живёт TTL и сбрасывается целиком по комнате
// при любом изменении журнала.
type Cache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewCache создает кэш поверх клиента Redis
func NewCache(client redis.Cmdable, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get возвращает закэшированный остаток, ok=false при промахе
func (c *Cache) Get(ctx context.Context, _ domain.Location, roomID string, rng domain.DateRange) (int, bool, error) {
	value, err := c.client.Get(ctx, key(roomID, rng)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: Get - room=%s: %v", ErrCacheRead, roomID, err)
	}
	return value, true, nil
}

// Set сохраняет остаток на TTL
func (c *Cache) Set(ctx context.Context, _ domain.Location, roomID string, rng domain.DateRange, remaining int) error {
	if err := c.client.Set(ctx, key(roomID, rng), remaining, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - room=%s: %v", ErrCacheWrite, roomID, err)
	}
	return nil
}

// Invalidate удаляет все закэшированные диапазоны комнаты
func (c *Cache) Invalidate(ctx context.Context, roomID string) error {
	iter := c.client.Scan(ctx, 0, roomPattern(roomID), scanBatch).Iterator()

	keys := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
		if len(keys) == scanBatch {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("%w: Invalidate - room=%s: %v", ErrInvalidate, roomID, err)
			}
			keys = keys[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - scan room=%s: %v", ErrInvalidate, roomID, err)
	}

	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("%w: Invalidate - room=%s: %v", ErrInvalidate, roomID, err)
		}
	}

	return nil
}

func key(roomID string, rng domain.DateRange) string {
	return fmt.Sprintf("%s:%s:%s:%s", keyPrefix, roomID,
		rng.Start.Format(domain.DateFormat), rng.End.Format(domain.DateFormat))
}

func roomPattern(roomID string) string {
	return fmt.Sprintf("%s:%s:*", keyPrefix, roomID)
}
