package availability

import "github.com/m04kA/SMC-HostelService/internal/domain"

// Catalog поиск конфигурации комнаты по идентификатору
type Catalog interface {
	Room(id string) (*domain.RoomConfig, bool)
}

// Recorder получатель метрик движка (реализуется pkg/metrics)
type Recorder interface {
	ObserveAvailabilityCheck(roomType string, available bool)
	ObserveCatalogFallback(roomID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
