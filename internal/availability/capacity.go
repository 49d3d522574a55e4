package availability

import "github.com/m04kA/SMC-HostelService/internal/domain"

// Resolve решает, помещается ли requested гостей в комнату поверх уже занятого
//
// Dorm: занятая кровать unitID отклоняет сразу, иначе суммируются гости
// и проверяется requested <= capacity - occupancy.
// Private/suite: requested > maxGuests отклоняет независимо от наличия комнат,
// иначе каждая пересекающаяся запись занимает одну комнату целиком.
func Resolve(room *domain.RoomConfig, claims []Claim, requested int, unitID string) bool {
	if !room.IsDorm() && requested > room.MaxGuests {
		return false
	}

	if unitID != "" && hasUnitCollision(claims, unitID) {
		return false
	}

	if room.IsDorm() {
		return requested <= room.Capacity-occupancy(room, claims)
	}
	return unitsTaken(room, claims) < room.Capacity
}

// FitsRemaining то же решение, что Resolve без конкретной кровати, но по уже посчитанному остатку
func FitsRemaining(room *domain.RoomConfig, remaining, requested int) bool {
	if room.IsDorm() {
		return requested <= remaining
	}
	return requested <= room.MaxGuests && remaining >= 1
}

// Remaining остаток вместимости, никогда не меньше нуля
// Для dorm в кроватях, для private/suite в комнатах
func Remaining(room *domain.RoomConfig, claims []Claim) int {
	var used int
	if room.IsDorm() {
		used = occupancy(room, claims)
	} else {
		used = unitsTaken(room, claims)
	}

	remaining := room.Capacity - used
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

func hasUnitCollision(claims []Claim, unitID string) bool {
	for _, c := range claims {
		if c.UnitID == unitID {
			return true
		}
	}
	return false
}

// occupancy сумма гостей; блокировка всей комнаты занимает все кровати
func occupancy(room *domain.RoomConfig, claims []Claim) int {
	total := 0
	for _, c := range claims {
		if c.WholeRoom {
			total += room.Capacity
			continue
		}
		total += guestsOf(c)
	}
	return total
}

// unitsTaken количество занятых комнат; блокировка без unit занимает все
func unitsTaken(room *domain.RoomConfig, claims []Claim) int {
	total := 0
	for _, c := range claims {
		if c.WholeRoom {
			total += room.Capacity
			continue
		}
		total++
	}
	return total
}

// guestsOf нулевое или отрицательное число гостей в журнале считаем одним гостем
func guestsOf(c Claim) int {
	if c.Guests < 1 {
		return 1
	}
	return c.Guests
}
