package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

func TestDateRange_Overlaps(t *testing.T) {
	stay := DateRange{Start: day(time.January, 10), End: day(time.January, 15)}

	tests := []struct {
		name  string
		other DateRange
		want  bool
	}{
		{name: "identical", other: stay, want: true},
		{name: "inside", other: DateRange{Start: day(time.January, 11), End: day(time.January, 12)}, want: true},
		{name: "covers", other: DateRange{Start: day(time.January, 1), End: day(time.January, 31)}, want: true},
		{name: "overlaps start", other: DateRange{Start: day(time.January, 8), End: day(time.January, 11)}, want: true},
		{name: "overlaps end", other: DateRange{Start: day(time.January, 14), End: day(time.January, 20)}, want: true},
		{name: "starts on checkout day", other: DateRange{Start: day(time.January, 15), End: day(time.January, 17)}, want: false},
		{name: "ends on checkin day", other: DateRange{Start: day(time.January, 5), End: day(time.January, 10)}, want: false},
		{name: "disjoint", other: DateRange{Start: day(time.February, 1), End: day(time.February, 3)}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stay.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(stay))
		})
	}
}

func TestNewDateRange(t *testing.T) {
	r, err := NewDateRange(
		time.Date(2025, 3, 1, 15, 30, 0, 0, time.UTC),
		time.Date(2025, 3, 5, 11, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	assert.Equal(t, day(time.March, 1), r.Start)
	assert.Equal(t, day(time.March, 5), r.End)
	assert.Equal(t, 4, r.Nights())

	_, err = NewDateRange(day(time.March, 5), day(time.March, 5))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = NewDateRange(day(time.March, 6), day(time.March, 5))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestParseDateRange(t *testing.T) {
	r, err := ParseDateRange("2025-01-10", "2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, "[2025-01-10, 2025-01-15)", r.String())

	_, err = ParseDateRange("10/01/2025", "2025-01-15")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestDateOf_KeepsLocalCalendarDay(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)

	lateUTC := time.Date(2026, 8, 10, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), DateOf(lateUTC))
	assert.Equal(t, time.Date(2026, 8, 11, 0, 0, 0, 0, time.UTC), DateOf(lateUTC.In(madrid)))
}
