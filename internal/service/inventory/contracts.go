package inventory

import (
	"context"

	"github.com/m04kA/SMC-HostelService/internal/availability"
	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveByRoomAndRange(ctx context.Context, roomID string, rng domain.DateRange, excludeID string) ([]*domain.Booking, error)
	LockRoom(ctx context.Context, roomID string) error
}

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	GetByRoomAndRange(ctx context.Context, roomID string, rng domain.DateRange) ([]*domain.InventoryBlock, error)
}

// Engine чистый движок доступности
type Engine interface {
	CheckAvailability(q availability.Query, ledger availability.Ledger) (bool, error)
	CheckRemaining(q availability.Query, remaining int) (bool, error)
	RemainingCapacity(location domain.Location, roomID string, rng domain.DateRange, ledger availability.Ledger) (int, error)
	Room(location domain.Location, roomID string) (*domain.RoomConfig, error)
}

// CapacityCache кэш остатка вместимости (Redis)
type CapacityCache interface {
	Get(ctx context.Context, location domain.Location, roomID string, rng domain.DateRange) (int, bool, error)
	Set(ctx context.Context, location domain.Location, roomID string, rng domain.DateRange, remaining int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
