package extend_booking

import (
	"time"

	"github.com/m04kA/SMC-HostelService/internal/domain"
	extendBooking "github.com/m04kA/SMC-HostelService/internal/usecase/extend_booking"
)

// ExtendBookingRequest HTTP request model
type ExtendBookingRequest struct {
	CheckOut string `json:"checkOut" validate:"required,datetime=2006-01-02"`
}

// ExtendBookingResponse HTTP response model
type ExtendBookingResponse struct {
	ID               string  `json:"id"`
	RoomID           string  `json:"roomId"`
	CheckIn          string  `json:"checkIn"`
	PreviousCheckOut string  `json:"previousCheckOut"`
	CheckOut         string  `json:"checkOut"`
	Nights           int     `json:"nights"`
	TotalPrice       float64 `json:"totalPrice"`
	Status           string  `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ExtendBookingRequest) ToUseCaseRequest(bookingID, staffID string) (*extendBooking.Request, error) {
	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}
	return &extendBooking.Request{
		BookingID:   bookingID,
		NewCheckOut: checkOut,
		StaffID:     staffID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *extendBooking.Response) *ExtendBookingResponse {
	return &ExtendBookingResponse{
		ID:               resp.ID,
		RoomID:           resp.RoomID,
		CheckIn:          resp.CheckIn.Format(domain.DateFormat),
		PreviousCheckOut: resp.PreviousCheckOut.Format(domain.DateFormat),
		CheckOut:         resp.CheckOut.Format(domain.DateFormat),
		Nights:           resp.Nights,
		TotalPrice:       resp.TotalPrice,
		Status:           string(resp.Status),
	}
}
