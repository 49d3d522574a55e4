package realtime

import (
	"context"
	"time"
)

// DefaultDebounce задержка схлопывания серии изменений одной комнаты
const DefaultDebounce = time.Second

// Subscriber слушает канал изменений и сбрасывает кэш остатков по комнате
// Серия записей по одной комнате (например, групповое бронирование) даёт одну инвалидацию.
type Subscriber struct {
	client    RedisSubscriber
	channel   string
	cache     CacheInvalidator
	debouncer *Debouncer
	timeout   time.Duration
	logger    Logger
}

// NewSubscriber создает subscriber; debounce <= 0 заменяется на DefaultDebounce
func NewSubscriber(client RedisSubscriber, channel string, cache CacheInvalidator, debounce time.Duration, logger Logger) *Subscriber {
	if channel == "" {
		channel = DefaultChannel
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	s := &Subscriber{
		client:  client,
		channel: channel,
		cache:   cache,
		timeout: 5 * time.Second,
		logger:  logger,
	}
	s.debouncer = NewDebouncer(debounce, s.refresh)
	return s
}

// Run блокируется до отмены ctx или закрытия подписки
func (s *Subscriber) Run(ctx context.Context) error {
	pubsub := s.client.Subscribe(ctx, s.channel)
	defer pubsub.Close()
	defer s.debouncer.Stop()

	// Receive дожидается подтверждения подписки, иначе первые события могут потеряться
	if _, err := pubsub.Receive(ctx); err != nil {
		return err
	}
	s.logger.Info("Subscriber: listening on channel %s", s.channel)

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Subscriber: stopped")
			return nil
		case msg, ok := <-messages:
			if !ok {
				s.logger.Warn("Subscriber: channel %s closed", s.channel)
				return nil
			}
			s.handle(msg.Payload)
		}
	}
}

func (s *Subscriber) handle(payload string) {
	event, err := decodeEvent(payload)
	if err != nil {
		s.logger.Warn("Subscriber: skipping message: %v", err)
		return
	}
	s.debouncer.Trigger(event.RoomID)
}

func (s *Subscriber) refresh(roomID string) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.cache.Invalidate(ctx, roomID); err != nil {
		s.logger.Error("Subscriber: failed to invalidate capacity cache for room=%s: %v", roomID, err)
		return
	}
	s.logger.Debug("Subscriber: capacity cache invalidated for room=%s", roomID)
}
