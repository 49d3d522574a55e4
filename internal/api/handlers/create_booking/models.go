package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HostelService/internal/domain"
	createBooking "github.com/m04kA/SMC-HostelService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-HostelService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Location   string           `json:"location" validate:"required,oneof=pueblo hideout"`
	RoomID     string           `json:"roomId" validate:"required"`
	UnitID     *string          `json:"unitId,omitempty" validate:"omitempty,min=1"`
	GuestName  string           `json:"guestName" validate:"required,max=200"`
	GuestEmail *string          `json:"guestEmail,omitempty" validate:"omitempty,email"`
	Guests     types.GuestCount `json:"guests"`                                           // число или строка, по умолчанию 1
	CheckIn    string           `json:"checkIn" validate:"required,datetime=2006-01-02"`  // "2025-10-15"
	CheckOut   string           `json:"checkOut" validate:"required,datetime=2006-01-02"` // "2025-10-18"
	Status     string           `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed"`
	Notes      *string          `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         string  `json:"id"`
	Location   string  `json:"location"`
	RoomID     string  `json:"roomId"`
	UnitID     *string `json:"unitId,omitempty"`
	GuestName  string  `json:"guestName"`
	GuestEmail *string `json:"guestEmail,omitempty"`
	Guests     int     `json:"guests"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	Nights     int     `json:"nights"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"totalPrice"`
	Notes      *string `json:"notes,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Формат дат уже проверен валидатором
func (r *CreateBookingRequest) ToUseCaseRequest(staffID string) (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Location:   domain.Location(r.Location),
		RoomID:     r.RoomID,
		UnitID:     r.UnitID,
		GuestName:  r.GuestName,
		GuestEmail: r.GuestEmail,
		Guests:     r.Guests.OrDefault(),
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     domain.BookingStatus(r.Status),
		Notes:      r.Notes,
		StaffID:    staffID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		Location:   string(resp.Location),
		RoomID:     resp.RoomID,
		UnitID:     resp.UnitID,
		GuestName:  resp.GuestName,
		GuestEmail: resp.GuestEmail,
		Guests:     resp.Guests,
		CheckIn:    resp.CheckIn.Format(domain.DateFormat),
		CheckOut:   resp.CheckOut.Format(domain.DateFormat),
		Nights:     resp.Nights,
		Status:     string(resp.Status),
		TotalPrice: resp.TotalPrice,
		Notes:      resp.Notes,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
