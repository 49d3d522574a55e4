package testutil

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// LedgerEvent опубликованное изменение журнала
type LedgerEvent struct {
	Location domain.Location
	RoomID   string
	Reason   string
}

// Notifier собирает опубликованные события
type Notifier struct {
	mu     sync.Mutex
	Events []LedgerEvent
	Err    error
}

func (n *Notifier) Publish(_ context.Context, location domain.Location, roomID string, reason string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.Err != nil {
		return n.Err
	}
	n.Events = append(n.Events, LedgerEvent{Location: location, RoomID: roomID, Reason: reason})
	return nil
}

// Metrics считает вызовы бизнес-метрик по операциям
type Metrics struct {
	mu         sync.Mutex
	Rejections map[string]int
	Changes    map[string]int
}

func NewMetrics() *Metrics {
	return &Metrics{Rejections: map[string]int{}, Changes: map[string]int{}}
}

func (m *Metrics) ObserveOverbookingRejection(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rejections[operation]++
}

func (m *Metrics) ObserveLedgerChange(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Changes[operation]++
}
