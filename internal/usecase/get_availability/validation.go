package get_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// validateRequest валидирует запрос и возвращает нормализованный диапазон
func validateRequest(req *Request, now time.Time) (domain.DateRange, error) {
	if !req.Location.IsValid() {
		return domain.DateRange{}, fmt.Errorf("%w: unknown location %q", ErrInvalidInput, req.Location)
	}

	if req.Guests < 0 || req.Guests > domain.MaxCapacity {
		return domain.DateRange{}, fmt.Errorf("%w: guests must be between 1 and %d", ErrInvalidInput, domain.MaxCapacity)
	}

	rng, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if rng.Nights() > domain.MaxStayNights {
		return domain.DateRange{}, fmt.Errorf("%w: maximum is %d nights", ErrInvalidInput, domain.MaxStayNights)
	}

	if rng.Start.Before(domain.DateOf(now)) {
		return domain.DateRange{}, ErrDateInPast
	}

	return rng, nil
}
