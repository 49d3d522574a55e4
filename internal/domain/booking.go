package domain

import (
	"time"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending     BookingStatus = "pending"
	StatusConfirmed   BookingStatus = "confirmed"
	StatusCheckedIn   BookingStatus = "checked_in"
	StatusCheckedOut  BookingStatus = "checked_out"
	StatusMaintenance BookingStatus = "maintenance"
	StatusCancelled   BookingStatus = "cancelled"
	StatusNoShow      BookingStatus = "no_show"
)

// IsValid returns true if the status is known
func (s BookingStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// transitions допустимые переходы жизненного цикла
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:     {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed:   {StatusCheckedIn, StatusCancelled, StatusNoShow},
	StatusCheckedIn:   {StatusCheckedOut, StatusCancelled},
	StatusMaintenance: {StatusCancelled},
}

// Booking represents an occupancy claim on a room (or a specific bed/unit)
type Booking struct {
	ID         string
	Location   Location
	RoomID     string  // ссылается на RoomConfig.ID
	UnitID     *string // номер кровати в dorm или конкретная комната private (если учитывается)
	GuestName  string
	GuestEmail *string
	Guests     int
	CheckIn    time.Time
	CheckOut   time.Time
	Status     BookingStatus
	TotalPrice float64
	Notes      *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range возвращает полуоткрытый диапазон проживания
func (b *Booking) Range() DateRange {
	return DateRange{Start: DateOf(b.CheckIn), End: DateOf(b.CheckOut)}
}

// OccupiesInventory true для всех броней кроме отменённых
func (b *Booking) OccupiesInventory() bool {
	return b.Status != StatusCancelled
}

// IsMaintenance returns true for legacy maintenance pseudo-bookings
func (b *Booking) IsMaintenance() bool {
	return b.Status == StatusMaintenance
}

// CanTransitionTo returns true if the lifecycle allows moving to next
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range transitions[b.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CanBeExtended returns true if the stay can still be prolonged
func (b *Booking) CanBeExtended() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusCheckedIn
}

// HasUnit returns true if the booking pins a specific bed/unit
func (b *Booking) HasUnit() bool {
	return b.UnitID != nil && *b.UnitID != ""
}

// BookingsFilter фильтр для списка бронирований
type BookingsFilter struct {
	Location         *Location
	RoomID           *string
	Status           *BookingStatus
	From             *time.Time // бронирования, заканчивающиеся после From
	To               *time.Time // бронирования, начинающиеся до To
	IncludeCancelled bool
}
