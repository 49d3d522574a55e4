package block_inventory

import (
	"fmt"
	"strings"

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

	if !req.Reason.IsValid() {
		return fmt.Errorf("%w: unknown reason %q", ErrInvalidInput, req.Reason)
	}

	if _, err := domain.NewDateRange(req.StartDate, req.EndDate); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are longer than %d", ErrInvalidInput, domain.MaxNotesLength)
	}

	if strings.TrimSpace(req.StaffID) == "" {
		return fmt.Errorf("%w: staff id is required", ErrInvalidInput)
	}

	return nil
}
