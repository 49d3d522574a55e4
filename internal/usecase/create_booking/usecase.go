package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HostelService/internal/availability"
	"github.com/m04kA/SMC-HostelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HostelService/internal/infra/storage/booking"
)

const operation = "create_booking"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	inventory    Inventory
	txManager    TransactionManager
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	inventory Inventory,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		inventory:    inventory,
		txManager:    txManager,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case создания бронирования
//
// Проверка и вставка идут в одной сериализуемой транзакции под advisory блокировкой комнаты,
// поэтому два параллельных запроса на последнюю кровать не пройдут оба.
// Пересечение по конкретной кровати дополнительно ловит EXCLUDE ограничение в БД.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: location=%s, room=%s, guests=%d, checkIn=%s, checkOut=%s, staff=%s",
		req.Location, req.RoomID, req.Guests,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.StaffID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	stay, _ := domain.NewDateRange(req.CheckIn, req.CheckOut)

	// 2. Проверяем даты относительно сегодняшнего дня
	if err := validateStay(stay, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: stay validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем конфигурацию комнаты (с эвристикой для комнат вне каталога)
	room, err := uc.inventory.Room(req.Location, req.RoomID)
	if err != nil {
		if errors.Is(err, availability.ErrUnknownRoom) {
			uc.logger.Warn("CreateBooking: room=%s not found in catalog", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to resolve room=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to resolve room: %v", ErrInternal, err)
	}

	if room.Location != "" && room.Location != req.Location {
		uc.logger.Warn("CreateBooking: room=%s belongs to %s, requested %s", room.ID, room.Location, req.Location)
		return nil, ErrLocationMismatch
	}

	if !room.IsDorm() && req.Guests > room.MaxGuests {
		uc.logger.Warn("CreateBooking: %d guests exceed maxGuests=%d of room=%s", req.Guests, room.MaxGuests, room.ID)
		uc.metrics.ObserveOverbookingRejection(operation)
		return nil, fmt.Errorf("%w: maximum is %d", ErrTooManyGuests, room.MaxGuests)
	}

	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}

	booking := &domain.Booking{
		ID:         uuid.NewString(),
		Location:   req.Location,
		RoomID:     req.RoomID,
		UnitID:     req.UnitID,
		GuestName:  strings.TrimSpace(req.GuestName),
		GuestEmail: req.GuestEmail,
		Guests:     req.Guests,
		CheckIn:    stay.Start,
		CheckOut:   stay.End,
		Status:     status,
		TotalPrice: room.StayPrice(req.Guests, stay.Nights()),
		Notes:      req.Notes,
	}

	var unitID string
	if booking.HasUnit() {
		unitID = *booking.UnitID
	}

	// 4. Проверка и запись в одной транзакции
	var result *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.inventory.LockRoom(txCtx, req.RoomID); err != nil {
			return fmt.Errorf("%w: failed to lock room: %w", ErrInternal, err)
		}

		available, err := uc.inventory.Check(txCtx, availability.Query{
			Location: req.Location,
			RoomID:   req.RoomID,
			Range:    stay,
			Guests:   req.Guests,
			UnitID:   unitID,
		})
		if err != nil {
			return fmt.Errorf("%w: availability check failed: %w", ErrInternal, err)
		}
		if !available {
			return ErrOverbooking
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrOverlapConflict) {
				return ErrOverbooking
			}
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrOverbooking) {
			uc.logger.Warn("CreateBooking: room=%s is not available for %s (guests=%d, unit=%q)",
				req.RoomID, stay, req.Guests, unitID)
			uc.metrics.ObserveOverbookingRejection(operation)
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed for room=%s: %v", req.RoomID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.ObserveLedgerChange(operation)
	if err := uc.notifier.Publish(ctx, result.Location, result.RoomID, operation); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish ledger change for room=%s: %v", result.RoomID, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, room=%s, %s, total=%.2f",
		result.ID, result.RoomID, stay, result.TotalPrice)

	return fromDomain(result), nil
}
