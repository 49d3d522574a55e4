package extend_booking

import (
	"time"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// Request модель запроса на продление проживания
type Request struct {
	BookingID   string
	NewCheckOut time.Time
	StaffID     string
}

// Response модель ответа с обновлённым проживанием
type Response struct {
	ID               string
	RoomID           string
	CheckIn          time.Time
	PreviousCheckOut time.Time
	CheckOut         time.Time
	Nights           int
	TotalPrice       float64
	Status           domain.BookingStatus
}
