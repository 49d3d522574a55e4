package domain

import (
	"fmt"
	"strings"
	"time"
)

// RoomType тип продаваемой единицы
type RoomType string

const (
	RoomTypeDorm    RoomType = "dorm"
	RoomTypePrivate RoomType = "private"
	RoomTypeSuite   RoomType = "suite"
)

// IsValid returns true if the room type is known
func (t RoomType) IsValid() bool {
	return t == RoomTypeDorm || t == RoomTypePrivate || t == RoomTypeSuite
}

// RoomConfig описание продаваемого продукта (тип комнаты на конкретной точке)
//
// Capacity трактуется по-разному:
//   - dorm: количество кроватей, гости суммируются
//   - private/suite: количество физических комнат этого типа, каждая бронь занимает комнату целиком
//
// MaxGuests - максимум гостей в ОДНОЙ комнате private/suite (для dorm не используется)
type RoomConfig struct {
	ID        string // например "pueblo_dorm_mixed_8"
	Location  Location
	Type      RoomType
	Name      string
	Capacity  int
	MaxGuests int
	BasePrice float64 // цена за ночь (за кровать в dorm, за комнату в private/suite)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDorm returns true if the room sells by the bed
func (r *RoomConfig) IsDorm() bool {
	return r.Type == RoomTypeDorm
}

// Validate проверяет инварианты конфигурации
func (r *RoomConfig) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidRoomConfig)
	}
	if !r.Location.IsValid() {
		return fmt.Errorf("%w: unknown location %q", ErrInvalidRoomConfig, r.Location)
	}
	if !r.Type.IsValid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidRoomConfig, r.Type)
	}
	if r.Capacity < MinCapacity {
		return fmt.Errorf("%w: capacity must be >= %d", ErrInvalidRoomConfig, MinCapacity)
	}
	if r.MaxGuests < MinMaxGuests {
		return fmt.Errorf("%w: maxGuests must be >= %d", ErrInvalidRoomConfig, MinMaxGuests)
	}
	if r.BasePrice < 0 {
		return fmt.Errorf("%w: basePrice must be non-negative", ErrInvalidRoomConfig)
	}
	return nil
}

// StayPrice стоимость проживания: в dorm платит каждая кровать, в private/suite - комната
func (r *RoomConfig) StayPrice(guests int, nights int) float64 {
	if r.IsDorm() {
		return r.BasePrice * float64(guests) * float64(nights)
	}
	return r.BasePrice * float64(nights)
}

// LooksLikeDorm эвристика по идентификатору, когда конфигурации нет в каталоге
func LooksLikeDorm(roomID string) bool {
	return strings.Contains(strings.ToLower(roomID), "dorm")
}

// RoomPatch изменяемые администратором поля (цена, вместимость, maxGuests)
type RoomPatch struct {
	BasePrice *float64
	Capacity  *int
	MaxGuests *int
	Name      *string
}

// IsEmpty returns true if nothing is going to change
func (p RoomPatch) IsEmpty() bool {
	return p.BasePrice == nil && p.Capacity == nil && p.MaxGuests == nil && p.Name == nil
}

// Apply возвращает копию конфигурации с применённым патчем
func (p RoomPatch) Apply(r RoomConfig) RoomConfig {
	if p.BasePrice != nil {
		r.BasePrice = *p.BasePrice
	}
	if p.Capacity != nil {
		r.Capacity = *p.Capacity
	}
	if p.MaxGuests != nil {
		r.MaxGuests = *p.MaxGuests
	}
	if p.Name != nil {
		r.Name = *p.Name
	}
	return r
}
