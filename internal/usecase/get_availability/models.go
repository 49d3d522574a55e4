package get_availability

import (
	"time"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// Request модель запроса доступности
type Request struct {
	Location         domain.Location
	RoomID           string // пусто - все комнаты точки
	CheckIn          time.Time
	CheckOut         time.Time
	Guests           int // 0 трактуется как 1
	UnitID           string
	ExcludeBookingID string // для редактирования существующей брони
}

// Response модель ответа с доступностью по комнатам
type Response struct {
	Location domain.Location
	CheckIn  time.Time
	CheckOut time.Time
	Nights   int
	Guests   int
	Rooms    []RoomAvailability
}

// RoomAvailability доступность одной комнаты (типа) на диапазон
type RoomAvailability struct {
	RoomID         string
	Name           string
	Type           domain.RoomType
	Available      bool
	Capacity       domain.RoomCapacity
	MaxGuests      int
	EstimatedPrice float64
}
