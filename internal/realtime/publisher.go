package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// Publisher публикует события изменения журнала в канал Redis
type Publisher struct {
	client  RedisPublisher
	channel string
	now     func() time.Time
	logger  Logger
}

// NewPublisher создает publisher; пустой channel заменяется на DefaultChannel
func NewPublisher(client RedisPublisher, channel string, logger Logger) *Publisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Publisher{
		client:  client,
		channel: channel,
		now:     time.Now,
		logger:  logger,
	}
}

// Publish отправляет событие. Вызывается после коммита, ошибка не откатывает запись
func (p *Publisher) Publish(ctx context.Context, location domain.Location, roomID string, reason string) error {
	payload, err := json.Marshal(Event{
		Location: location,
		RoomID:   roomID,
		Reason:   reason,
		At:       p.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("realtime: Publish - marshal event: %w", err)
	}

	receivers, err := p.client.Publish(ctx, p.channel, payload).Result()
	if err != nil {
		return fmt.Errorf("realtime: Publish - channel=%s: %w", p.channel, err)
	}

	p.logger.Debug("Publish: room=%s reason=%s delivered to %d subscribers", roomID, reason, receivers)
	return nil
}

// Discard notifier для запуска без Redis: события только логируются
type Discard struct {
	Logger Logger
}

func (d Discard) Publish(_ context.Context, location domain.Location, roomID string, reason string) error {
	if d.Logger != nil {
		d.Logger.Debug("Publish: realtime disabled, dropping event room=%s/%s reason=%s", location, roomID, reason)
	}
	return nil
}
