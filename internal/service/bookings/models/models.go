package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

var (
	// ErrInvalidFilter возвращается, когда фильтр нельзя разобрать
	ErrInvalidFilter = errors.New("invalid bookings filter")

	// ErrUnknownStatus возвращается для статуса вне жизненного цикла
	ErrUnknownStatus = errors.New("unknown booking status")
)

// Request модели

// ListBookingsRequest запрос на список бронирований
// Все поля опциональны, даты в формате YYYY-MM-DD
//
// Примеры:
// - Все активные брони точки: Location = "pueblo"
// - Кто живёт в комнате на неделе: RoomID, From и To
// - Только отменённые: Status = "cancelled"
type ListBookingsRequest struct {
	Location         string
	RoomID           string
	Status           string
	From             string
	To               string
	IncludeCancelled bool
}

// ToDomainFilter конвертирует запрос в domain фильтр с валидацией
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{IncludeCancelled: r.IncludeCancelled}

	if r.Location != "" {
		loc, err := domain.ParseLocation(r.Location)
		if err != nil {
			return filter, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
		filter.Location = &loc
	}

	if r.RoomID != "" {
		roomID := r.RoomID
		filter.RoomID = &roomID
	}

	if r.Status != "" {
		status, err := ToDomainBookingStatus(r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.From != "" {
		from, err := time.Parse(domain.DateFormat, r.From)
		if err != nil {
			return filter, fmt.Errorf("%w: from %q", ErrInvalidFilter, r.From)
		}
		filter.From = &from
	}

	if r.To != "" {
		to, err := time.Parse(domain.DateFormat, r.To)
		if err != nil {
			return filter, fmt.Errorf("%w: to %q", ErrInvalidFilter, r.To)
		}
		filter.To = &to
	}

	if filter.From != nil && filter.To != nil && !filter.To.After(*filter.From) {
		return filter, fmt.Errorf("%w: to must be after from", ErrInvalidFilter)
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         string  `json:"id"`
	Location   string  `json:"location"`
	RoomID     string  `json:"roomId"`
	UnitID     *string `json:"unitId,omitempty"`
	GuestName  string  `json:"guestName"`
	GuestEmail *string `json:"guestEmail,omitempty"`
	Guests     int     `json:"guests"`
	CheckIn    string  `json:"checkIn"`  // YYYY-MM-DD
	CheckOut   string  `json:"checkOut"` // YYYY-MM-DD
	Nights     int     `json:"nights"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"totalPrice"`
	Notes      *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		Location:           string(b.Location),
		RoomID:             b.RoomID,
		UnitID:             b.UnitID,
		GuestName:          b.GuestName,
		GuestEmail:         b.GuestEmail,
		Guests:             b.Guests,
		CheckIn:            b.CheckIn.Format(domain.DateFormat),
		CheckOut:           b.CheckOut.Format(domain.DateFormat),
		Nights:             b.Range().Nights(),
		Status:             string(b.Status),
		TotalPrice:         b.TotalPrice,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	return s, nil
}
