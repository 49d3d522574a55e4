package update_room

import (
	"github.com/m04kA/SMC-HostelService/internal/service/rooms/models"
)

// UpdateRoomRequest HTTP request model
// Тип комнаты и точка через API не меняются
type UpdateRoomRequest struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Capacity  *int     `json:"capacity,omitempty" validate:"omitempty,min=1,max=100"`
	MaxGuests *int     `json:"maxGuests,omitempty" validate:"omitempty,min=1"`
	BasePrice *float64 `json:"basePrice,omitempty" validate:"omitempty,min=0"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateRoomRequest) ToServiceRequest(staffID string) *models.UpdateRoomRequest {
	return &models.UpdateRoomRequest{
		StaffID:   staffID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		MaxGuests: r.MaxGuests,
		BasePrice: r.BasePrice,
	}
}
