package availability

import (
	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// FindOverlapping выбирает неотменённые брони комнаты, пересекающиеся с rng
//
// Пересечение полуоткрытое: rng.Start < booking.End && rng.End > booking.Start,
// поэтому бронь, заканчивающаяся в день D, и бронь, начинающаяся в день D, не конфликтуют.
// excludeBookingID исключает саму бронь при её повторной проверке.
func FindOverlapping(roomID string, rng domain.DateRange, excludeBookingID string, bookings []*domain.Booking) []*domain.Booking {
	result := make([]*domain.Booking, 0)

	for _, b := range bookings {
		if b == nil || b.RoomID != roomID {
			continue
		}
		if excludeBookingID != "" && b.ID == excludeBookingID {
			continue
		}
		if !b.OccupiesInventory() {
			continue
		}
		if rng.Overlaps(b.Range()) {
			result = append(result, b)
		}
	}

	return result
}

// FindOverlappingBlocks то же самое для блокировок инвентаря
func FindOverlappingBlocks(roomID string, rng domain.DateRange, blocks []*domain.InventoryBlock) []*domain.InventoryBlock {
	result := make([]*domain.InventoryBlock, 0)

	for _, b := range blocks {
		if b == nil || b.RoomID != roomID {
			continue
		}
		if rng.Overlaps(b.Range()) {
			result = append(result, b)
		}
	}

	return result
}

// collectClaims сводит брони и блокировки к единому виду
// Записи с другой точкой пропускаются: идентификаторы комнат и так привязаны к точке,
// это перекрёстная проверка на случай грязных данных
func collectClaims(location domain.Location, bookings []*domain.Booking, blocks []*domain.InventoryBlock) []Claim {
	claims := make([]Claim, 0, len(bookings)+len(blocks))

	for _, b := range bookings {
		if !sameLocation(location, b.Location) {
			continue
		}
		claim := Claim{SourceID: b.ID, Guests: b.Guests}
		if b.HasUnit() {
			claim.UnitID = *b.UnitID
		}
		// Старые maintenance-брони без кровати блокируют комнату целиком
		if b.IsMaintenance() && !b.HasUnit() {
			claim.WholeRoom = true
		}
		claims = append(claims, claim)
	}

	for _, b := range blocks {
		if !sameLocation(location, b.Location) {
			continue
		}
		claim := Claim{SourceID: b.ID, Guests: 1, WholeRoom: b.IsWholeRoom()}
		if !b.IsWholeRoom() {
			claim.UnitID = *b.UnitID
		}
		claims = append(claims, claim)
	}

	return claims
}

func sameLocation(query, record domain.Location) bool {
	return query == "" || record == "" || query == record
}
