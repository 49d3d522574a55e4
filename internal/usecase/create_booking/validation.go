package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.Location.IsValid() {
		return fmt.Errorf("%w: unknown location %q", ErrInvalidInput, req.Location)
	}

	if strings.TrimSpace(req.RoomID) == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}

	if req.UnitID != nil && strings.TrimSpace(*req.UnitID) == "" {
		return fmt.Errorf("%w: unitId must not be blank", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.GuestName)
	if name == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guestName is longer than %d", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	if req.Guests < 1 || req.Guests > domain.MaxCapacity {
		return fmt.Errorf("%w: guests must be between 1 and %d", ErrInvalidInput, domain.MaxCapacity)
	}

	if _, err := domain.NewDateRange(req.CheckIn, req.CheckOut); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Status != "" && req.Status != domain.StatusPending && req.Status != domain.StatusConfirmed {
		return fmt.Errorf("%w: initial status must be pending or confirmed", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are longer than %d", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateStay проверяет даты относительно текущего дня
func validateStay(rng domain.DateRange, now time.Time) error {
	if rng.Start.Before(domain.DateOf(now)) {
		return ErrDateInPast
	}

	if rng.Nights() > domain.MaxStayNights {
		return fmt.Errorf("%w: maximum is %d nights", ErrStayTooLong, domain.MaxStayNights)
	}

	return nil
}
