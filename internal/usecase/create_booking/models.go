package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Location   domain.Location
	RoomID     string
	UnitID     *string // конкретная кровать/комната (опционально)
	GuestName  string
	GuestEmail *string
	Guests     int
	CheckIn    time.Time
	CheckOut   time.Time
	Status     domain.BookingStatus // pending (по умолчанию) или confirmed
	Notes      *string
	StaffID    string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         string
	Location   domain.Location
	RoomID     string
	UnitID     *string
	GuestName  string
	GuestEmail *string
	Guests     int
	CheckIn    time.Time
	CheckOut   time.Time
	Nights     int
	Status     domain.BookingStatus
	TotalPrice float64
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:         b.ID,
		Location:   b.Location,
		RoomID:     b.RoomID,
		UnitID:     b.UnitID,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		Guests:     b.Guests,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Nights:     b.Range().Nights(),
		Status:     b.Status,
		TotalPrice: b.TotalPrice,
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
