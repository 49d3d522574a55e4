package extend_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HostelService/internal/availability"
	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStay(ctx context.Context, id string, checkOut time.Time, totalPrice float64) error
}

// Inventory проверка доступности поверх журнала
type Inventory interface {
	Room(location domain.Location, roomID string) (*domain.RoomConfig, error)
	LockRoom(ctx context.Context, roomID string) error
	Check(ctx context.Context, q availability.Query) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier публикует событие об изменении журнала после коммита
type Notifier interface {
	Publish(ctx context.Context, location domain.Location, roomID string, reason string) error
}

// Metrics счётчики бизнес-событий
type Metrics interface {
	ObserveOverbookingRejection(operation string)
	ObserveLedgerChange(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
