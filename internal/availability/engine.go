package availability

import (
	"fmt"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// Engine фасад проверки доступности
// Не выполняет I/O и не меняет переданный журнал: вызывающий код сам загружает
// пересекающиеся записи и сам пишет новую бронь после положительного ответа
type Engine struct {
	catalog  Catalog
	logger   Logger
	recorder Recorder
	strict   bool
}

// Option настройка движка
type Option func(*Engine)

// WithStrictCatalog неизвестная комната возвращает ErrUnknownRoom вместо эвристики
func WithStrictCatalog(strict bool) Option {
	return func(e *Engine) {
		e.strict = strict
	}
}

// WithRecorder подключает метрики
func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		e.recorder = r
	}
}

// NewEngine создает новый экземпляр движка
func NewEngine(catalog Catalog, logger Logger, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CheckAvailability можно ли разместить q.Guests гостей в комнате на q.Range
// Недоступность - это false, а не ошибка. Ошибка только для некорректного запроса
// или неизвестной комнаты в strict режиме
func (e *Engine) CheckAvailability(q Query, ledger Ledger) (bool, error) {
	if err := q.validate(); err != nil {
		return false, err
	}

	room, err := e.lookupRoom(q.Location, q.RoomID)
	if err != nil {
		return false, err
	}

	bookings := FindOverlapping(q.RoomID, q.Range, q.ExcludeBookingID, ledger.Bookings)
	blocks := FindOverlappingBlocks(q.RoomID, q.Range, ledger.Blocks)
	claims := collectClaims(q.Location, bookings, blocks)

	available := Resolve(room, claims, q.Guests, q.UnitID)

	if e.recorder != nil {
		e.recorder.ObserveAvailabilityCheck(string(room.Type), available)
	}

	return available, nil
}

// CheckRemaining решение по ранее посчитанному остатку (например, из кэша)
// Конкретная кровать и исключение собственной брони требуют журнала, для них ErrInvalidQuery
func (e *Engine) CheckRemaining(q Query, remaining int) (bool, error) {
	if err := q.validate(); err != nil {
		return false, err
	}
	if q.UnitID != "" || q.ExcludeBookingID != "" {
		return false, fmt.Errorf("%w: unit or excluded booking needs the ledger", ErrInvalidQuery)
	}

	room, err := e.lookupRoom(q.Location, q.RoomID)
	if err != nil {
		return false, err
	}

	available := FitsRemaining(room, remaining, q.Guests)

	if e.recorder != nil {
		e.recorder.ObserveAvailabilityCheck(string(room.Type), available)
	}

	return available, nil
}

// RemainingCapacity остаток свободных кроватей (dorm) или комнат (private/suite)
func (e *Engine) RemainingCapacity(location domain.Location, roomID string, rng domain.DateRange, ledger Ledger) (int, error) {
	q := Query{Location: location, RoomID: roomID, Range: rng, Guests: 1}
	if err := q.validate(); err != nil {
		return 0, err
	}

	room, err := e.lookupRoom(location, roomID)
	if err != nil {
		return 0, err
	}

	bookings := FindOverlapping(roomID, rng, "", ledger.Bookings)
	blocks := FindOverlappingBlocks(roomID, rng, ledger.Blocks)

	return Remaining(room, collectClaims(location, bookings, blocks)), nil
}

// Room возвращает конфигурацию, которой будет пользоваться движок (с учётом эвристики)
func (e *Engine) Room(location domain.Location, roomID string) (*domain.RoomConfig, error) {
	return e.lookupRoom(location, roomID)
}

func (e *Engine) lookupRoom(location domain.Location, roomID string) (*domain.RoomConfig, error) {
	if e.catalog != nil {
		if room, ok := e.catalog.Room(roomID); ok && room != nil {
			return room, nil
		}
	}

	if e.strict {
		e.logger.Error("Availability: room %q not found in catalog (strict mode)", roomID)
		return nil, fmt.Errorf("%w: %s", ErrUnknownRoom, roomID)
	}

	e.logger.Warn("Availability: room %q not found in catalog, using fallback capacity (data integrity issue)", roomID)
	if e.recorder != nil {
		e.recorder.ObserveCatalogFallback(roomID)
	}

	return fallbackRoom(location, roomID), nil
}

// fallbackRoom эвристика для комнат, которых нет в каталоге
func fallbackRoom(location domain.Location, roomID string) *domain.RoomConfig {
	if domain.LooksLikeDorm(roomID) {
		return &domain.RoomConfig{
			ID:        roomID,
			Location:  location,
			Type:      domain.RoomTypeDorm,
			Capacity:  domain.FallbackDormCapacity,
			MaxGuests: domain.FallbackDormCapacity,
		}
	}
	return &domain.RoomConfig{
		ID:        roomID,
		Location:  location,
		Type:      domain.RoomTypePrivate,
		Capacity:  domain.FallbackRoomCapacity,
		MaxGuests: domain.FallbackPrivateMaxGuest,
	}
}
