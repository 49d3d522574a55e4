package scheduler

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// BookingRepository переводит незаехавшие брони в no_show
type BookingRepository interface {
	MarkNoShows(ctx context.Context, before time.Time) ([]*domain.Booking, error)
}

// CatalogReloader перечитывает каталог комнат из БД
type CatalogReloader interface {
	Reload(ctx context.Context) error
}

// Metrics счётчик изменений журнала
type Metrics interface {
	ObserveLedgerChange(operation string)
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
