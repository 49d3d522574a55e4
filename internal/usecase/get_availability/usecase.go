package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HostelService/internal/availability"
	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// UseCase use case для получения доступности комнат на диапазон дат
type UseCase struct {
	inventory    Inventory
	catalog      Catalog
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(inventory Inventory, catalog Catalog, logger Logger) *UseCase {
	return &UseCase{
		inventory:    inventory,
		catalog:      catalog,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: location=%s, room=%q, checkIn=%s, checkOut=%s, guests=%d",
		req.Location, req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных
	rng, err := validateRequest(req, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	guests := req.Guests
	if guests == 0 {
		guests = 1
	}

	// 2. Комнаты для проверки: одна или весь каталог точки
	var rooms []*domain.RoomConfig
	if req.RoomID != "" {
		room, err := uc.inventory.Room(req.Location, req.RoomID)
		if err != nil {
			if errors.Is(err, availability.ErrUnknownRoom) {
				uc.logger.Warn("GetAvailability: room=%s not found in catalog", req.RoomID)
				return nil, ErrRoomNotFound
			}
			uc.logger.Error("GetAvailability: failed to resolve room=%s: %v", req.RoomID, err)
			return nil, fmt.Errorf("%w: failed to resolve room: %v", ErrInternal, err)
		}
		rooms = []*domain.RoomConfig{room}
	} else {
		rooms = uc.catalog.List(req.Location)
	}

	// 3. Считаем доступность и остаток по каждой комнате
	result := make([]RoomAvailability, 0, len(rooms))
	for _, room := range rooms {
		item, err := uc.roomAvailability(ctx, req, room, rng, guests)
		if err != nil {
			uc.logger.Error("GetAvailability: failed for room=%s: %v", room.ID, err)
			return nil, fmt.Errorf("%w: room=%s: %v", ErrInternal, room.ID, err)
		}
		result = append(result, item)
	}

	soldOut := 0
	for _, item := range result {
		if item.Capacity.IsFull() {
			soldOut++
		}
	}
	uc.logger.Info("GetAvailability: checked %d rooms at %s for %s, sold out=%d", len(result), req.Location, rng, soldOut)

	return &Response{
		Location: req.Location,
		CheckIn:  rng.Start,
		CheckOut: rng.End,
		Nights:   rng.Nights(),
		Guests:   guests,
		Rooms:    result,
	}, nil
}

func (uc *UseCase) roomAvailability(
	ctx context.Context,
	req *Request,
	room *domain.RoomConfig,
	rng domain.DateRange,
	guests int,
) (RoomAvailability, error) {
	available, remaining, err := uc.inventory.Availability(ctx, availability.Query{
		Location:         req.Location,
		RoomID:           room.ID,
		Range:            rng,
		Guests:           guests,
		ExcludeBookingID: req.ExcludeBookingID,
		UnitID:           req.UnitID,
	})
	if err != nil {
		return RoomAvailability{}, err
	}

	return RoomAvailability{
		RoomID:         room.ID,
		Name:           room.Name,
		Type:           room.Type,
		Available:      available,
		Capacity:       domain.RoomCapacity{RoomID: room.ID, Remaining: remaining, Total: room.Capacity},
		MaxGuests:      room.MaxGuests,
		EstimatedPrice: room.StayPrice(guests, rng.Nights()),
	}, nil
}
