package inventory

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-HostelService/internal/availability"
	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// Service связывает движок доступности с хранилищем
// Загружает из БД только записи, пересекающиеся с запрашиваемым диапазоном,
// и передаёт их движку. Внутри транзакции чтения видят её снимок.
type Service struct {
	bookingRepo BookingRepository
	blockRepo   BlockRepository
	engine      Engine
	cache       CapacityCache
	logger      Logger
}

// NewService создает новый экземпляр сервиса инвентаря
// cache может быть nil, тогда остаток всегда считается заново
func NewService(
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	engine Engine,
	cache CapacityCache,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		blockRepo:   blockRepo,
		engine:      engine,
		cache:       cache,
		logger:      logger,
	}
}

// Ledger загружает пересекающиеся брони и блокировки комнаты
func (s *Service) Ledger(ctx context.Context, roomID string, rng domain.DateRange, excludeBookingID string) (availability.Ledger, error) {
	bookings, err := s.bookingRepo.GetActiveByRoomAndRange(ctx, roomID, rng, excludeBookingID)
	if err != nil {
		return availability.Ledger{}, fmt.Errorf("%w: Ledger - load bookings: %w", ErrInternal, err)
	}

	blocks, err := s.blockRepo.GetByRoomAndRange(ctx, roomID, rng)
	if err != nil {
		return availability.Ledger{}, fmt.Errorf("%w: Ledger - load blocks: %w", ErrInternal, err)
	}

	return availability.Ledger{Bookings: bookings, Blocks: blocks}, nil
}

// Check проверяет доступность по актуальному журналу
func (s *Service) Check(ctx context.Context, q availability.Query) (bool, error) {
	ledger, err := s.Ledger(ctx, q.RoomID, q.Range, q.ExcludeBookingID)
	if err != nil {
		return false, err
	}

	return s.engine.CheckAvailability(q, ledger)
}

// Availability доступность и остаток из одного и того же снимка
// Без кровати и исключаемой брони решение принимается по (кэшированному) остатку,
// иначе журнал загружается один раз и по нему считаются оба значения.
// Во втором случае остаток не учитывает исключённую бронь
func (s *Service) Availability(ctx context.Context, q availability.Query) (bool, int, error) {
	if q.UnitID == "" && q.ExcludeBookingID == "" {
		remaining, err := s.Remaining(ctx, q.Location, q.RoomID, q.Range)
		if err != nil {
			return false, 0, err
		}
		available, err := s.engine.CheckRemaining(q, remaining)
		if err != nil {
			return false, 0, err
		}
		return available, remaining, nil
	}

	ledger, err := s.Ledger(ctx, q.RoomID, q.Range, q.ExcludeBookingID)
	if err != nil {
		return false, 0, err
	}

	available, err := s.engine.CheckAvailability(q, ledger)
	if err != nil {
		return false, 0, err
	}

	remaining, err := s.engine.RemainingCapacity(q.Location, q.RoomID, q.Range, ledger)
	if err != nil {
		return false, 0, err
	}

	return available, remaining, nil
}

// Remaining остаток вместимости с кэшированием
// Ошибки кэша не ломают ответ: значение считается по БД
func (s *Service) Remaining(ctx context.Context, location domain.Location, roomID string, rng domain.DateRange) (int, error) {
	if s.cache != nil {
		remaining, ok, err := s.cache.Get(ctx, location, roomID, rng)
		if err != nil {
			s.logger.Warn("Remaining: capacity cache get failed for room=%s: %v", roomID, err)
		} else if ok {
			return remaining, nil
		}
	}

	remaining, err := s.RemainingNow(ctx, location, roomID, rng)
	if err != nil {
		return 0, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, location, roomID, rng, remaining); err != nil {
			s.logger.Warn("Remaining: capacity cache set failed for room=%s: %v", roomID, err)
		}
	}

	return remaining, nil
}

// RemainingNow остаток по текущему журналу в обход кэша (для проверок внутри транзакции)
func (s *Service) RemainingNow(ctx context.Context, location domain.Location, roomID string, rng domain.DateRange) (int, error) {
	ledger, err := s.Ledger(ctx, roomID, rng, "")
	if err != nil {
		return 0, err
	}

	return s.engine.RemainingCapacity(location, roomID, rng, ledger)
}

// LockRoom сериализует запись в журнал по комнате до конца текущей транзакции
func (s *Service) LockRoom(ctx context.Context, roomID string) error {
	if err := s.bookingRepo.LockRoom(ctx, roomID); err != nil {
		return fmt.Errorf("%w: LockRoom - room=%s: %w", ErrInternal, roomID, err)
	}
	return nil
}

// Room конфигурация комнаты, по которой считает движок (включая эвристику)
func (s *Service) Room(location domain.Location, roomID string) (*domain.RoomConfig, error) {
	return s.engine.Room(location, roomID)
}
