package rooms

import (
	"context"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// RoomRepository интерфейс репозитория каталога комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id string) (*domain.RoomConfig, error)
	List(ctx context.Context, location *domain.Location) ([]*domain.RoomConfig, error)
	Update(ctx context.Context, room *domain.RoomConfig) (*domain.RoomConfig, error)
}

// Catalog снимок каталога в памяти, которым пользуется движок доступности
type Catalog interface {
	Put(room *domain.RoomConfig)
}

// Notifier публикует событие об изменении вместимости
type Notifier interface {
	Publish(ctx context.Context, location domain.Location, roomID string, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
