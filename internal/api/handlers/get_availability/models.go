package get_availability

import (
	"net/url"
	"time"

	"github.com/m04kA/SMC-HostelService/internal/domain"
	getAvailability "github.com/m04kA/SMC-HostelService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-HostelService/pkg/types"
)

// AvailabilityQuery query параметры запроса
type AvailabilityQuery struct {
	Location         string `validate:"required,oneof=pueblo hideout"`
	RoomID           string
	CheckIn          string `validate:"required,datetime=2006-01-02"`
	CheckOut         string `validate:"required,datetime=2006-01-02"`
	Guests           string
	UnitID           string
	ExcludeBookingID string `validate:"omitempty,uuid"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Location string             `json:"location"`
	CheckIn  string             `json:"checkIn"`
	CheckOut string             `json:"checkOut"`
	Nights   int                `json:"nights"`
	Guests   int                `json:"guests"`
	Rooms    []RoomAvailability `json:"rooms"`
}

// RoomAvailability доступность одной комнаты
type RoomAvailability struct {
	RoomID         string  `json:"roomId"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Available      bool    `json:"available"`
	Remaining      int     `json:"remaining"`
	Total          int     `json:"total"`
	OccupancyRate  float64 `json:"occupancyRate"` // процент занятых кроватей/комнат
	MaxGuests      int     `json:"maxGuests"`
	EstimatedPrice float64 `json:"estimatedPrice"`
}

// FromQuery читает параметры из URL
func FromQuery(q url.Values) AvailabilityQuery {
	return AvailabilityQuery{
		Location:         q.Get("location"),
		RoomID:           q.Get("roomId"),
		CheckIn:          q.Get("checkIn"),
		CheckOut:         q.Get("checkOut"),
		Guests:           q.Get("guests"),
		UnitID:           q.Get("unitId"),
		ExcludeBookingID: q.Get("excludeBookingId"),
	}
}

// ToUseCaseRequest создает запрос use case, guests парсится здесь один раз
func (q AvailabilityQuery) ToUseCaseRequest() (*getAvailability.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, q.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := time.Parse(domain.DateFormat, q.CheckOut)
	if err != nil {
		return nil, err
	}
	guests, err := types.ParseGuestCount(q.Guests)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		Location:         domain.Location(q.Location),
		RoomID:           q.RoomID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Guests:           guests.OrDefault(),
		UnitID:           q.UnitID,
		ExcludeBookingID: q.ExcludeBookingID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	rooms := make([]RoomAvailability, len(resp.Rooms))
	for i, room := range resp.Rooms {
		rooms[i] = RoomAvailability{
			RoomID:         room.RoomID,
			Name:           room.Name,
			Type:           string(room.Type),
			Available:      room.Available,
			Remaining:      room.Capacity.Remaining,
			Total:          room.Capacity.Total,
			OccupancyRate:  room.Capacity.OccupancyRate(),
			MaxGuests:      room.MaxGuests,
			EstimatedPrice: room.EstimatedPrice,
		}
	}

	return &AvailabilityResponse{
		Location: string(resp.Location),
		CheckIn:  resp.CheckIn.Format(domain.DateFormat),
		CheckOut: resp.CheckOut.Format(domain.DateFormat),
		Nights:   resp.Nights,
		Guests:   resp.Guests,
		Rooms:    rooms,
	}
}
