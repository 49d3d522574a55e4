package domain

import "time"

// BlockReason причина блокировки инвентаря
type BlockReason string

const (
	BlockReasonMaintenance BlockReason = "maintenance"
	BlockReasonCleaning    BlockReason = "cleaning"
	BlockReasonOwnerUse    BlockReason = "owner_use"
)

// IsValid returns true if the reason is known
func (r BlockReason) IsValid() bool {
	return r == BlockReasonMaintenance || r == BlockReasonCleaning || r == BlockReasonOwnerUse
}

// InventoryBlock блокировка комнаты или отдельной кровати/комнаты на диапазон дат
// Без UnitID блокирует весь тип комнаты целиком, с UnitID - одну единицу
// Участвует в проверке доступности наравне с бронированиями
type InventoryBlock struct {
	ID        string
	Location  Location
	RoomID    string
	UnitID    *string
	StartDate time.Time
	EndDate   time.Time
	Reason    BlockReason
	Notes     *string
	CreatedBy string
	CreatedAt time.Time
}

// Range возвращает полуоткрытый диапазон блокировки
func (b *InventoryBlock) Range() DateRange {
	return DateRange{Start: DateOf(b.StartDate), End: DateOf(b.EndDate)}
}

// IsWholeRoom returns true if the block covers every unit of the room
func (b *InventoryBlock) IsWholeRoom() bool {
	return b.UnitID == nil || *b.UnitID == ""
}

// BlocksFilter фильтр для списка блокировок
type BlocksFilter struct {
	Location *Location
	RoomID   *string
	From     *time.Time // блокировки, заканчивающиеся после From
	To       *time.Time // блокировки, начинающиеся до To
}
