package models

import (
	"time"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// Request модели

// UpdateRoomRequest запрос администратора на изменение комнаты
// Все поля опциональны - обновляются только переданные значения
type UpdateRoomRequest struct {
	StaffID   string   `json:"-"`
	Name      *string  `json:"name,omitempty"`
	Capacity  *int     `json:"capacity,omitempty"`
	MaxGuests *int     `json:"maxGuests,omitempty"`
	BasePrice *float64 `json:"basePrice,omitempty"`
}

// ToDomainPatch конвертирует запрос в патч
func (r *UpdateRoomRequest) ToDomainPatch() domain.RoomPatch {
	return domain.RoomPatch{
		BasePrice: r.BasePrice,
		Capacity:  r.Capacity,
		MaxGuests: r.MaxGuests,
		Name:      r.Name,
	}
}

// Response модели

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID        string    `json:"id"`
	Location  string    `json:"location"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	MaxGuests int       `json:"maxGuests"`
	BasePrice float64   `json:"basePrice"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.RoomConfig) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		ID:        r.ID,
		Location:  string(r.Location),
		Type:      string(r.Type),
		Name:      r.Name,
		Capacity:  r.Capacity,
		MaxGuests: r.MaxGuests,
		BasePrice: r.BasePrice,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.RoomConfig) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}

	for _, room := range rooms {
		if r := FromDomainRoom(room); r != nil {
			resp.Rooms = append(resp.Rooms, *r)
		}
	}

	return resp
}
