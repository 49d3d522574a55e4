package block_inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HostelService/internal/availability"
	"github.com/m04kA/SMC-HostelService/internal/domain"
	blockRepo "github.com/m04kA/SMC-HostelService/internal/infra/storage/block"
)

const operation = "block_inventory"

// UseCase use case для блокировки инвентаря (ремонт, уборка, личное использование)
type UseCase struct {
	blockRepo    BlockRepository
	inventory    Inventory
	txManager    TransactionManager
	notifier     Notifier
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	blockRepo BlockRepository,
	inventory Inventory,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		blockRepo:    blockRepo,
		inventory:    inventory,
		txManager:    txManager,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case блокировки
//
// Блокировка проходит ту же проверку, что и бронь: целиком комнату можно закрыть,
// только если на всём диапазоне свободны все места, одну кровать - только если она свободна.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BlockInventory: location=%s, room=%s, start=%s, end=%s, reason=%s, staff=%s",
		req.Location, req.RoomID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		req.Reason, req.StaffID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BlockInventory: validation failed: %v", err)
		return nil, err
	}

	rng, _ := domain.NewDateRange(req.StartDate, req.EndDate)
	if rng.Start.Before(domain.DateOf(uc.timeProvider.Now())) {
		uc.logger.Warn("BlockInventory: start date %s is in the past", rng.Start.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	room, err := uc.inventory.Room(req.Location, req.RoomID)
	if err != nil {
		if errors.Is(err, availability.ErrUnknownRoom) {
			uc.logger.Warn("BlockInventory: room=%s not found in catalog", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("BlockInventory: failed to resolve room=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to resolve room: %v", ErrInternal, err)
	}

	if room.Location != "" && room.Location != req.Location {
		uc.logger.Warn("BlockInventory: room=%s belongs to %s, requested %s", room.ID, room.Location, req.Location)
		return nil, ErrLocationMismatch
	}

	block := &domain.InventoryBlock{
		ID:        uuid.NewString(),
		Location:  req.Location,
		RoomID:    req.RoomID,
		UnitID:    req.UnitID,
		StartDate: rng.Start,
		EndDate:   rng.End,
		Reason:    req.Reason,
		Notes:     req.Notes,
		CreatedBy: req.StaffID,
	}

	var result *domain.InventoryBlock
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := uc.inventory.LockRoom(txCtx, req.RoomID); err != nil {
			return fmt.Errorf("%w: failed to lock room: %w", ErrInternal, err)
		}

		free, err := uc.isFree(txCtx, room, block, rng)
		if err != nil {
			return err
		}
		if !free {
			return ErrOverbooking
		}

		created, err := uc.blockRepo.Create(txCtx, block)
		if err != nil {
			if errors.Is(err, blockRepo.ErrOverlapConflict) {
				return ErrOverbooking
			}
			return fmt.Errorf("%w: failed to create block: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrOverbooking) {
			uc.logger.Warn("BlockInventory: room=%s cannot be blocked for %s, inventory is occupied", req.RoomID, rng)
			uc.metrics.ObserveOverbookingRejection(operation)
			return nil, err
		}
		uc.logger.Error("BlockInventory: transaction failed for room=%s: %v", req.RoomID, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.ObserveLedgerChange(operation)
	if err := uc.notifier.Publish(ctx, result.Location, result.RoomID, operation); err != nil {
		uc.logger.Warn("BlockInventory: failed to publish ledger change for room=%s: %v", result.RoomID, err)
	}

	uc.logger.Info("BlockInventory: created block id=%s for room=%s, %s, wholeRoom=%t",
		result.ID, result.RoomID, rng, result.IsWholeRoom())

	return fromDomain(result), nil
}

// isFree проверяет, что блокируемые места не заняты бронями и другими блокировками
func (uc *UseCase) isFree(ctx context.Context, room *domain.RoomConfig, block *domain.InventoryBlock, rng domain.DateRange) (bool, error) {
	if block.IsWholeRoom() {
		remaining, err := uc.inventory.RemainingNow(ctx, block.Location, block.RoomID, rng)
		if err != nil {
			return false, fmt.Errorf("%w: remaining capacity failed: %w", ErrInternal, err)
		}
		return remaining >= room.Capacity, nil
	}

	available, err := uc.inventory.Check(ctx, availability.Query{
		Location: block.Location,
		RoomID:   block.RoomID,
		Range:    rng,
		Guests:   1,
		UnitID:   *block.UnitID,
	})
	if err != nil {
		return false, fmt.Errorf("%w: availability check failed: %w", ErrInternal, err)
	}
	return available, nil
}
