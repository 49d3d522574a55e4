package block_inventory

import (
	"time"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// Request модель запроса на блокировку
// Без UnitID блокируется вся комната (все места), с UnitID - одна кровать или комната
type Request struct {
	Location  domain.Location
	RoomID    string
	UnitID    *string
	StartDate time.Time
	EndDate   time.Time
	Reason    domain.BlockReason
	Notes     *string
	StaffID   string
}

// Response модель ответа с созданной блокировкой
type Response struct {
	ID        string
	Location  domain.Location
	RoomID    string
	UnitID    *string
	StartDate time.Time
	EndDate   time.Time
	Reason    domain.BlockReason
	Notes     *string
	CreatedBy string
	CreatedAt time.Time
}

func fromDomain(b *domain.InventoryBlock) *Response {
	return &Response{
		ID:        b.ID,
		Location:  b.Location,
		RoomID:    b.RoomID,
		UnitID:    b.UnitID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Reason:    b.Reason,
		Notes:     b.Notes,
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
	}
}
