package update_booking_status

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-HostelService/internal/availability"
	"github.com/m04kA/SMC-HostelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HostelService/internal/infra/storage/booking"
)

const operation = "update_booking_status"

// UseCase use case для перевода бронирования по жизненному циклу
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

// Execute выполняет use case смены статуса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingStatus: booking=%s, status=%s, staff=%s", req.BookingID, req.Status, req.StaffID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBookingStatus: validation failed: %v", err)
		return nil, err
	}

	today := domain.DateOf(uc.timeProvider.Now())

	var resp *Response
	var booking *domain.Booking
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		if !booking.CanTransitionTo(req.Status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, req.Status)
		}

		if err := uc.inventory.LockRoom(txCtx, booking.RoomID); err != nil {
			return fmt.Errorf("%w: failed to lock room: %w", ErrInternal, err)
		}

		resp = &Response{
			ID:             booking.ID,
			PreviousStatus: booking.Status,
			Status:         req.Status,
			CheckIn:        booking.CheckIn,
			CheckOut:       booking.CheckOut,
			TotalPrice:     booking.TotalPrice,
		}

		switch req.Status {
		case domain.StatusConfirmed:
			return uc.confirm(txCtx, booking)
		case domain.StatusCheckedIn:
			return uc.checkIn(txCtx, booking, req, today)
		case domain.StatusCheckedOut:
			return uc.checkOut(txCtx, booking, today, resp)
		case domain.StatusCancelled:
			resp.InventoryRelease = true
			if err := uc.bookingRepo.Cancel(txCtx, booking.ID, strings.TrimSpace(*req.Reason)); err != nil {
				return fmt.Errorf("%w: failed to cancel booking: %w", ErrInternal, err)
			}
			return nil
		case domain.StatusNoShow:
			if today.Before(booking.Range().Start) {
				return ErrCheckInNotReached
			}
			return uc.setStatus(txCtx, booking.ID, domain.StatusNoShow)
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrOverbooking):
			uc.logger.Warn("UpdateBookingStatus: booking=%s cannot be confirmed, room is full", req.BookingID)
			uc.metrics.ObserveOverbookingRejection(operation)
			return nil, err
		case errors.Is(err, ErrBookingNotFound),
			errors.Is(err, ErrInvalidTransition),
			errors.Is(err, ErrPaymentNotSettled),
			errors.Is(err, ErrIdentityNotVerified),
			errors.Is(err, ErrCheckInNotReached):
			uc.logger.Warn("UpdateBookingStatus: booking=%s rejected: %v", req.BookingID, err)
			return nil, err
		}
		uc.logger.Error("UpdateBookingStatus: transaction failed for booking=%s: %v", req.BookingID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.ObserveLedgerChange(operation)
	if resp.InventoryRelease {
		if err := uc.notifier.Publish(ctx, booking.Location, booking.RoomID, operation); err != nil {
			uc.logger.Warn("UpdateBookingStatus: failed to publish ledger change for room=%s: %v", booking.RoomID, err)
		}
	}

	uc.logger.Info("UpdateBookingStatus: booking=%s moved %s -> %s", resp.ID, resp.PreviousStatus, resp.Status)

	return resp, nil
}

// confirm повторно проверяет доступность, исключая саму бронь из журнала
func (uc *UseCase) confirm(ctx context.Context, booking *domain.Booking) error {
	var unitID string
	if booking.HasUnit() {
		unitID = *booking.UnitID
	}

	available, err := uc.inventory.Check(ctx, availability.Query{
		Location:         booking.Location,
		RoomID:           booking.RoomID,
		Range:            booking.Range(),
		Guests:           booking.Guests,
		ExcludeBookingID: booking.ID,
		UnitID:           unitID,
	})
	if err != nil {
		return fmt.Errorf("%w: availability check failed: %w", ErrInternal, err)
	}
	if !available {
		return ErrOverbooking
	}

	return uc.setStatus(ctx, booking.ID, domain.StatusConfirmed)
}

func (uc *UseCase) checkIn(ctx context.Context, booking *domain.Booking, req *Request, today time.Time) error {
	if !req.PaymentSettled {
		return ErrPaymentNotSettled
	}
	if !req.IdentityVerified {
		return ErrIdentityNotVerified
	}
	if today.Before(booking.Range().Start) {
		return fmt.Errorf("%w: check-in is %s", ErrCheckInNotReached, booking.CheckIn.Format(domain.DateFormat))
	}

	return uc.setStatus(ctx, booking.ID, domain.StatusCheckedIn)
}

// checkOut при раннем выезде сокращает бронь до сегодняшнего дня и пересчитывает цену
// Выезд в день заезда оставляет одну ночь: диапазон не может быть пустым
func (uc *UseCase) checkOut(ctx context.Context, booking *domain.Booking, today time.Time, resp *Response) error {
	stay := booking.Range()

	checkOut := today
	if !checkOut.After(stay.Start) {
		checkOut = stay.Start.AddDate(0, 0, 1)
	}

	if checkOut.Before(stay.End) {
		room, err := uc.inventory.Room(booking.Location, booking.RoomID)
		if err != nil {
			return fmt.Errorf("%w: failed to resolve room: %w", ErrInternal, err)
		}

		nights := domain.DateRange{Start: stay.Start, End: checkOut}.Nights()
		price := room.StayPrice(booking.Guests, nights)

		if err := uc.bookingRepo.UpdateStay(ctx, booking.ID, checkOut, price); err != nil {
			return fmt.Errorf("%w: failed to shorten stay: %w", ErrInternal, err)
		}

		uc.logger.Info("UpdateBookingStatus: early checkout booking=%s, checkOut %s -> %s",
			booking.ID, stay.End.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))

		resp.CheckOut = checkOut
		resp.TotalPrice = price
		resp.InventoryRelease = true
	}

	return uc.setStatus(ctx, booking.ID, domain.StatusCheckedOut)
}

func (uc *UseCase) setStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	if err := uc.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("%w: failed to update status: %w", ErrInternal, err)
	}
	return nil
}
