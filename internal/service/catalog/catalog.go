package catalog

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// Catalog снимок каталога комнат в памяти
// Движок доступности читает его на каждой проверке, поэтому поход в БД
// происходит только при Reload (старт, изменение администратором, периодическое обновление)
type Catalog struct {
	repo   RoomRepository
	logger Logger

	mu    sync.RWMutex
	rooms map[string]*domain.RoomConfig
}

// New создает пустой каталог, до первого Reload все комнаты неизвестны
func New(repo RoomRepository, logger Logger) *Catalog {
	return &Catalog{
		repo:   repo,
		logger: logger,
		rooms:  make(map[string]*domain.RoomConfig),
	}
}

// Room возвращает копию конфигурации комнаты
func (c *Catalog) Room(id string) (*domain.RoomConfig, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	room, ok := c.rooms[id]
	if !ok {
		return nil, false
	}
	cp := *room
	return &cp, true
}

// List комнаты точки (или все, если location пустая), отсортированные по id
func (c *Catalog) List(location domain.Location) []*domain.RoomConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rooms := make([]*domain.RoomConfig, 0, len(c.rooms))
	for _, room := range c.rooms {
		if location != "" && room.Location != location {
			continue
		}
		cp := *room
		rooms = append(rooms, &cp)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID < rooms[j].ID })
	return rooms
}

// Len количество комнат в снимке
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.rooms)
}

// Reload перечитывает каталог из репозитория
// Некорректные записи пропускаются с предупреждением, снимок заменяется целиком
func (c *Catalog) Reload(ctx context.Context) error {
	rooms, err := c.repo.List(ctx, nil)
	if err != nil {
		return fmt.Errorf("catalog: reload: %w", err)
	}

	next := make(map[string]*domain.RoomConfig, len(rooms))
	for _, room := range rooms {
		if err := room.Validate(); err != nil {
			c.logger.Warn("Catalog: skipping room %q: %v", room.ID, err)
			continue
		}
		next[room.ID] = room
	}

	c.mu.Lock()
	c.rooms = next
	c.mu.Unlock()

	c.logger.Info("Catalog: loaded %d rooms", len(next))
	return nil
}

// Put обновляет одну запись без полной перезагрузки (после изменения администратором)
func (c *Catalog) Put(room *domain.RoomConfig) {
	if room == nil {
		return
	}
	cp := *room

	c.mu.Lock()
	c.rooms[room.ID] = &cp
	c.mu.Unlock()
}
