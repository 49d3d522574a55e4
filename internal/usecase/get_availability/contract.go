package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HostelService/internal/availability"
	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// Inventory проверка доступности и остаток вместимости
type Inventory interface {
	Room(location domain.Location, roomID string) (*domain.RoomConfig, error)
	Availability(ctx context.Context, q availability.Query) (bool, int, error)
}

// Catalog список комнат точки
type Catalog interface {
	List(location domain.Location) []*domain.RoomConfig
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
