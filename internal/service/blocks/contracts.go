package blocks

import (
	"context"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	GetByID(ctx context.Context, id string) (*domain.InventoryBlock, error)
	List(ctx context.Context, filter domain.BlocksFilter) ([]*domain.InventoryBlock, error)
	Delete(ctx context.Context, id string) error
}

// Notifier публикует событие об изменении журнала
type Notifier interface {
	Publish(ctx context.Context, location domain.Location, roomID string, reason string) error
}

// Metrics счётчик изменений журнала
type Metrics interface {
	ObserveLedgerChange(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
