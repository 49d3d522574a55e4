package realtime

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// CacheInvalidator сбрасывает закэшированные остатки комнаты
type CacheInvalidator interface {
	Invalidate(ctx context.Context, roomID string) error
}

// RedisPublisher часть клиента Redis, нужная для публикации
type RedisPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisSubscriber часть клиента Redis, нужная для подписки
type RedisSubscriber interface {
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
