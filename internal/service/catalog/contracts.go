package catalog

import (
	"context"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// RoomRepository источник каталога
type RoomRepository interface {
	List(ctx context.Context, location *domain.Location) ([]*domain.RoomConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
