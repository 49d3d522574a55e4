package update_booking_status

import (
	"github.com/m04kA/SMC-HostelService/internal/domain"
	updateStatus "github.com/m04kA/SMC-HostelService/internal/usecase/update_booking_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status           string  `json:"status" validate:"required,oneof=confirmed checked_in checked_out cancelled no_show"`
	Reason           *string `json:"reason,omitempty" validate:"omitempty,max=500"`
	PaymentSettled   bool    `json:"paymentSettled"`
	IdentityVerified bool    `json:"identityVerified"`
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	ID               string  `json:"id"`
	PreviousStatus   string  `json:"previousStatus"`
	Status           string  `json:"status"`
	CheckIn          string  `json:"checkIn"`
	CheckOut         string  `json:"checkOut"`
	TotalPrice       float64 `json:"totalPrice"`
	InventoryRelease bool    `json:"inventoryReleased"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateStatusRequest) ToUseCaseRequest(bookingID, staffID string) *updateStatus.Request {
	return &updateStatus.Request{
		BookingID:        bookingID,
		Status:           domain.BookingStatus(r.Status),
		Reason:           r.Reason,
		PaymentSettled:   r.PaymentSettled,
		IdentityVerified: r.IdentityVerified,
		StaffID:          staffID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateStatus.Response) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		ID:               resp.ID,
		PreviousStatus:   string(resp.PreviousStatus),
		Status:           string(resp.Status),
		CheckIn:          resp.CheckIn.Format(domain.DateFormat),
		CheckOut:         resp.CheckOut.Format(domain.DateFormat),
		TotalPrice:       resp.TotalPrice,
		InventoryRelease: resp.InventoryRelease,
	}
}
