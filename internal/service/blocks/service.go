package blocks

import (
	"context"
	"errors"
	"fmt"

	blockRepo "github.com/m04kA/SMC-HostelService/internal/infra/storage/block"
	"github.com/m04kA/SMC-HostelService/internal/service/blocks/models"
)

const unblockOperation = "unblock_inventory"

// Service сервис для просмотра и снятия блокировок
type Service struct {
	blockRepo BlockRepository
	notifier  Notifier
	metrics   Metrics
	logger    Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(blockRepo BlockRepository, notifier Notifier, metrics Metrics, logger Logger) *Service {
	return &Service{
		blockRepo: blockRepo,
		notifier:  notifier,
		metrics:   metrics,
		logger:    logger,
	}
}

// List получает блокировки с фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListBlocksRequest) (*models.BlockListResponse, error) {
	s.logger.Info("ListBlocks: location=%q, room=%q, from=%q, to=%q", req.Location, req.RoomID, req.From, req.To)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListBlocks: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	blocks, err := s.blockRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListBlocks: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockList(blocks), nil
}

// Unblock снимает блокировку, места сразу снова продаются
func (s *Service) Unblock(ctx context.Context, id string, staffID string) error {
	s.logger.Info("Unblock: removing block id=%s by staff=%s", id, staffID)

	block, err := s.blockRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("Unblock: block id=%s not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("Unblock: repository error for block id=%s: %v", id, err)
		return fmt.Errorf("%w: Unblock - get block: %v", ErrInternal, err)
	}

	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			return ErrBlockNotFound
		}
		s.logger.Error("Unblock: repository error for block id=%s: %v", id, err)
		return fmt.Errorf("%w: Unblock - delete block: %v", ErrInternal, err)
	}

	s.metrics.ObserveLedgerChange(unblockOperation)
	if err := s.notifier.Publish(ctx, block.Location, block.RoomID, unblockOperation); err != nil {
		s.logger.Warn("Unblock: failed to publish ledger change for room=%s: %v", block.RoomID, err)
	}

	s.logger.Info("Unblock: block id=%s removed from room=%s", id, block.RoomID)
	return nil
}
