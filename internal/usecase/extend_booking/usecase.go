package extend_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HostelService/internal/availability"
	"github.com/m04kA/SMC-HostelService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-HostelService/internal/infra/storage/booking"
)

const operation = "extend_booking"

// UseCase use case для продления проживания
type UseCase struct {
	bookingRepo BookingRepository
	inventory   Inventory
	txManager   TransactionManager
	notifier    Notifier
	metrics     Metrics
	logger      Logger
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
		bookingRepo: bookingRepo,
		inventory:   inventory,
		txManager:   txManager,
		notifier:    notifier,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case продления
//
// Проверяется весь новый диапазон, а не только добавленные ночи: бронь исключается
// из журнала по id, поэтому сама себе не мешает. Для брони с кроватью проверяется та же кровать.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExtendBooking: booking=%s, newCheckOut=%s, staff=%s",
		req.BookingID, req.NewCheckOut.Format(domain.DateFormat), req.StaffID)

	if strings.TrimSpace(req.BookingID) == "" || req.NewCheckOut.IsZero() {
		uc.logger.Warn("ExtendBooking: validation failed: bookingId and newCheckOut are required")
		return nil, fmt.Errorf("%w: bookingId and newCheckOut are required", ErrInvalidInput)
	}

	newCheckOut := domain.DateOf(req.NewCheckOut)

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

		if !booking.CanBeExtended() {
			return fmt.Errorf("%w: status is %s", ErrCannotExtend, booking.Status)
		}

		current := booking.Range()
		if !newCheckOut.After(current.End) {
			return fmt.Errorf("%w: current check-out is %s", ErrInvalidCheckOut, current.End.Format(domain.DateFormat))
		}

		extended := domain.DateRange{Start: current.Start, End: newCheckOut}
		if extended.Nights() > domain.MaxStayNights {
			return fmt.Errorf("%w: maximum is %d nights", ErrStayTooLong, domain.MaxStayNights)
		}

		if err := uc.inventory.LockRoom(txCtx, booking.RoomID); err != nil {
			return fmt.Errorf("%w: failed to lock room: %w", ErrInternal, err)
		}

		var unitID string
		if booking.HasUnit() {
			unitID = *booking.UnitID
		}

		available, err := uc.inventory.Check(txCtx, availability.Query{
			Location:         booking.Location,
			RoomID:           booking.RoomID,
			Range:            extended,
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

		room, err := uc.inventory.Room(booking.Location, booking.RoomID)
		if err != nil {
			return fmt.Errorf("%w: failed to resolve room: %w", ErrInternal, err)
		}
		price := room.StayPrice(booking.Guests, extended.Nights())

		if err := uc.bookingRepo.UpdateStay(txCtx, booking.ID, newCheckOut, price); err != nil {
			if errors.Is(err, bookingRepo.ErrOverlapConflict) {
				return ErrOverbooking
			}
			return fmt.Errorf("%w: failed to update stay: %w", ErrInternal, err)
		}

		resp = &Response{
			ID:               booking.ID,
			RoomID:           booking.RoomID,
			CheckIn:          current.Start,
			PreviousCheckOut: current.End,
			CheckOut:         newCheckOut,
			Nights:           extended.Nights(),
			TotalPrice:       price,
			Status:           booking.Status,
		}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrOverbooking):
			uc.logger.Warn("ExtendBooking: booking=%s cannot be extended to %s, room is full",
				req.BookingID, newCheckOut.Format(domain.DateFormat))
			uc.metrics.ObserveOverbookingRejection(operation)
			return nil, err
		case errors.Is(err, ErrBookingNotFound),
			errors.Is(err, ErrCannotExtend),
			errors.Is(err, ErrInvalidCheckOut),
			errors.Is(err, ErrStayTooLong):
			uc.logger.Warn("ExtendBooking: booking=%s rejected: %v", req.BookingID, err)
			return nil, err
		}
		uc.logger.Error("ExtendBooking: transaction failed for booking=%s: %v", req.BookingID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.ObserveLedgerChange(operation)
	if err := uc.notifier.Publish(ctx, booking.Location, booking.RoomID, operation); err != nil {
		uc.logger.Warn("ExtendBooking: failed to publish ledger change for room=%s: %v", booking.RoomID, err)
	}

	uc.logger.Info("ExtendBooking: booking=%s extended to %s, nights=%d, total=%.2f",
		resp.ID, resp.CheckOut.Format(domain.DateFormat), resp.Nights, resp.TotalPrice)

	return resp, nil
}
