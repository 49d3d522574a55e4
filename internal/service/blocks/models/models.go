package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HostelService/internal/domain"
)

// ErrInvalidFilter возвращается, когда фильтр нельзя разобрать
var ErrInvalidFilter = errors.New("invalid blocks filter")

// ListBlocksRequest запрос на список блокировок, даты в формате YYYY-MM-DD
type ListBlocksRequest struct {
	Location string
	RoomID   string
	From     string
	To       string
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *ListBlocksRequest) ToDomainFilter() (domain.BlocksFilter, error) {
	var filter domain.BlocksFilter

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

	return filter, nil
}

// BlockResponse ответ с данными блокировки
type BlockResponse struct {
	ID        string    `json:"id"`
	Location  string    `json:"location"`
	RoomID    string    `json:"roomId"`
	UnitID    *string   `json:"unitId,omitempty"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Reason    string    `json:"reason"`
	Notes     *string   `json:"notes,omitempty"`
	WholeRoom bool      `json:"wholeRoom"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockListResponse ответ со списком блокировок
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// FromDomainBlock конвертирует domain модель в DTO
func FromDomainBlock(b *domain.InventoryBlock) *BlockResponse {
	if b == nil {
		return nil
	}

	return &BlockResponse{
		ID:        b.ID,
		Location:  string(b.Location),
		RoomID:    b.RoomID,
		UnitID:    b.UnitID,
		StartDate: b.StartDate.Format(domain.DateFormat),
		EndDate:   b.EndDate.Format(domain.DateFormat),
		Reason:    string(b.Reason),
		Notes:     b.Notes,
		WholeRoom: b.IsWholeRoom(),
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockList конвертирует список domain моделей в DTO
func FromDomainBlockList(blocks []*domain.InventoryBlock) *BlockListResponse {
	resp := &BlockListResponse{Blocks: make([]BlockResponse, 0, len(blocks))}
	for _, b := range blocks {
		if r := FromDomainBlock(b); r != nil {
			resp.Blocks = append(resp.Blocks, *r)
		}
	}
	return resp
}
