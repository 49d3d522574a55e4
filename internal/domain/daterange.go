package domain

import (
	"fmt"
	"time"
)

// DateRange полуоткрытый диапазон дат [Start, End)
// День выезда не входит в диапазон: номер можно продать в тот же день
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DateOf отбрасывает время, оставляя календарную дату в UTC
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NewDateRange нормализует границы до дат и проверяет, что End > Start
func NewDateRange(start, end time.Time) (DateRange, error) {
	r := DateRange{Start: DateOf(start), End: DateOf(end)}
	if err := r.Validate(); err != nil {
		return DateRange{}, err
	}
	return r, nil
}

// ParseDateRange парсит пару дат в формате YYYY-MM-DD
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := time.Parse(DateFormat, start)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: start %q", ErrInvalidDateRange, start)
	}
	e, err := time.Parse(DateFormat, end)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: end %q", ErrInvalidDateRange, end)
	}
	return NewDateRange(s, e)
}

// Validate returns an error if the range is empty or inverted
func (r DateRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: both dates are required", ErrInvalidDateRange)
	}
	if !r.End.After(r.Start) {
		return fmt.Errorf("%w: checkOut %s must be after checkIn %s",
			ErrInvalidDateRange, r.End.Format(DateFormat), r.Start.Format(DateFormat))
	}
	return nil
}

// Overlaps полуоткрытое пересечение: start < other.End && end > other.Start
func (r DateRange) Overlaps(other DateRange) bool {
	return r.Start.Before(other.End) && r.End.After(other.Start)
}

// Nights количество ночей в диапазоне
func (r DateRange) Nights() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s, %s)", r.Start.Format(DateFormat), r.End.Format(DateFormat))
}
