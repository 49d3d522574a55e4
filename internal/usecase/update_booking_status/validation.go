package update_booking_status

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// targetStatuses статусы, в которые можно перевести бронь через этот usecase
var targetStatuses = map[domain.BookingStatus]struct{}{
	domain.StatusConfirmed:  {},
	domain.StatusCheckedIn:  {},
	domain.StatusCheckedOut: {},
	domain.StatusCancelled:  {},
	domain.StatusNoShow:     {},
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.BookingID) == "" {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	if _, ok := targetStatuses[req.Status]; !ok {
		return fmt.Errorf("%w: unsupported target status %q", ErrInvalidInput, req.Status)
	}

	if req.Status == domain.StatusCancelled {
		if req.Reason == nil || strings.TrimSpace(*req.Reason) == "" {
			return fmt.Errorf("%w: cancellation reason is required", ErrInvalidInput)
		}
		if len(*req.Reason) > domain.MaxCancellationReasonLength {
			return fmt.Errorf("%w: cancellation reason is longer than %d", ErrInvalidInput, domain.MaxCancellationReasonLength)
		}
	}

	return nil
}
