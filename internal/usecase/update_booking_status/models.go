package update_booking_status

import (
	"time"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// Request модель запроса на смену статуса
type Request struct {
	BookingID string
	Status    domain.BookingStatus
	Reason    *string // обязателен для cancelled

	// Отметки персонала, обязательны для checked_in
	PaymentSettled   bool
	IdentityVerified bool

	StaffID string
}

// Response модель ответа
type Response struct {
	ID               string
	PreviousStatus   domain.BookingStatus
	Status           domain.BookingStatus
	CheckIn          time.Time
	CheckOut         time.Time
	TotalPrice       float64
	InventoryRelease bool // true, если освободились ночи (отмена или ранний выезд)
}
