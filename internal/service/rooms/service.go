package rooms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HostelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HostelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HostelService/internal/service/rooms/models"
)

// Service сервис для работы с каталогом комнат
type Service struct {
	roomRepo RoomRepository
	catalog  Catalog
	notifier Notifier
	logger   Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(
	roomRepo RoomRepository,
	catalog Catalog,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		roomRepo: roomRepo,
		catalog:  catalog,
		notifier: notifier,
		logger:   logger,
	}
}

// List получает комнаты точки, пустая точка - все комнаты
func (s *Service) List(ctx context.Context, location string) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching rooms for location=%q", location)

	var filter *domain.Location
	if location != "" {
		loc, err := domain.ParseLocation(location)
		if err != nil {
			s.logger.Warn("List: invalid location=%q", location)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		filter = &loc
	}

	rooms, err := s.roomRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d rooms", len(rooms))
	return models.FromDomainRoomList(rooms), nil
}

// GetByID получает комнату по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.RoomResponse, error) {
	s.logger.Info("GetByID: fetching room id=%s", id)

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%s not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// Update изменяет цену, вместимость, maxGuests или название комнаты
// Тип и точка не меняются. Новое значение сразу попадает в каталог движка
// и публикуется как изменение журнала, чтобы сбросить кэш остатков.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: updating room id=%s by staff=%s", id, req.StaffID)

	patch := req.ToDomainPatch()
	if patch.IsEmpty() {
		s.logger.Warn("Update: nothing to update for room id=%s", id)
		return nil, fmt.Errorf("%w: at least one field is required", ErrInvalidInput)
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, fmt.Errorf("%w: name must not be blank", ErrInvalidInput)
	}
	if patch.Capacity != nil && *patch.Capacity > domain.MaxCapacity {
		return nil, fmt.Errorf("%w: capacity must be <= %d", ErrInvalidInput, domain.MaxCapacity)
	}

	current, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("Update: room id=%s not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("Update: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - get room: %v", ErrInternal, err)
	}

	next := patch.Apply(*current)
	if err := next.Validate(); err != nil {
		s.logger.Warn("Update: invalid config for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.roomRepo.Update(ctx, &next)
	if err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			return nil, ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrInvalidConfig):
			s.logger.Warn("Update: database rejected room id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("Update: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.catalog.Put(updated)
	if err := s.notifier.Publish(ctx, updated.Location, updated.ID, "update_room"); err != nil {
		s.logger.Warn("Update: failed to publish change for room id=%s: %v", id, err)
	}

	s.logger.Info("Update: room id=%s updated: capacity %d -> %d, maxGuests %d -> %d, basePrice %.2f -> %.2f",
		id, current.Capacity, updated.Capacity, current.MaxGuests, updated.MaxGuests, current.BasePrice, updated.BasePrice)
	return models.FromDomainRoom(updated), nil
}
