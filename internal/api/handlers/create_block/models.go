package create_block

import (
	"time"

	"github.com/m04kA/SMC-HostelService/internal/domain"
	blockInventory "github.com/m04kA/SMC-HostelService/internal/usecase/block_inventory"
)

// CreateBlockRequest HTTP request model
// Без unitId блокируется вся комната
type CreateBlockRequest struct {
	Location  string  `json:"location" validate:"required,oneof=pueblo hideout"`
	RoomID    string  `json:"roomId" validate:"required"`
	UnitID    *string `json:"unitId,omitempty" validate:"omitempty,min=1"`
	StartDate string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string  `json:"endDate" validate:"required,datetime=2006-01-02"`
	Reason    string  `json:"reason,omitempty" validate:"omitempty,oneof=maintenance cleaning owner_use"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// BlockResponse HTTP response model
type BlockResponse struct {
	ID        string  `json:"id"`
	Location  string  `json:"location"`
	RoomID    string  `json:"roomId"`
	UnitID    *string `json:"unitId,omitempty"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Reason    string  `json:"reason"`
	Notes     *string `json:"notes,omitempty"`
	WholeRoom bool    `json:"wholeRoom"`
	CreatedBy string  `json:"createdBy"`
	CreatedAt string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Причина по умолчанию - maintenance
func (r *CreateBlockRequest) ToUseCaseRequest(staffID string) (*blockInventory.Request, error) {
	start, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	reason := domain.BlockReason(r.Reason)
	if reason == "" {
		reason = domain.BlockReasonMaintenance
	}

	return &blockInventory.Request{
		Location:  domain.Location(r.Location),
		RoomID:    r.RoomID,
		UnitID:    r.UnitID,
		StartDate: start,
		EndDate:   end,
		Reason:    reason,
		Notes:     r.Notes,
		StaffID:   staffID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *blockInventory.Response) *BlockResponse {
	return &BlockResponse{
		ID:        resp.ID,
		Location:  string(resp.Location),
		RoomID:    resp.RoomID,
		UnitID:    resp.UnitID,
		StartDate: resp.StartDate.Format(domain.DateFormat),
		EndDate:   resp.EndDate.Format(domain.DateFormat),
		Reason:    string(resp.Reason),
		Notes:     resp.Notes,
		WholeRoom: resp.UnitID == nil,
		CreatedBy: resp.CreatedBy,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
