package block

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HostelService/internal/domain"
	"github.com/m04kA/SMC-HostelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HostelService/pkg/pgerr"
	"github.com/m04kA/SMC-HostelService/pkg/psqlbuilder"
)

var blockColumns = []string{
	"id",
	"location",
	"room_id",
	"unit_id",
	"start_date",
	"end_date",
	"reason",
	"notes",
	"created_by",
	"created_at",
}

// Repository репозиторий блокировок инвентаря (ремонт, уборка, личное использование)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет блокировку
func (r *Repository) Create(ctx context.Context, block *domain.InventoryBlock) (*domain.InventoryBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("inventory_blocks").
		Columns(
			"id",
			"location",
			"room_id",
			"unit_id",
			"start_date",
			"end_date",
			"reason",
			"notes",
			"created_by",
		).
		Values(
			block.ID,
			block.Location,
			block.RoomID,
			block.UnitID,
			domain.DateOf(block.StartDate),
			domain.DateOf(block.EndDate),
			block.Reason,
			block.Notes,
			block.CreatedBy,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)

	if pgerr.IsExclusionViolation(err) {
		return nil, fmt.Errorf("%w: Create - %s", ErrOverlapConflict, pgerr.Constraint(err))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time

	return block, nil
}

// GetByID получает блокировку по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.InventoryBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("inventory_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	block, err := scanBlock(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan block: %v", ErrScanRow, err)
	}

	return block, nil
}

// GetByRoomAndRange блокировки комнаты, пересекающиеся с rng
func (r *Repository) GetByRoomAndRange(ctx context.Context, roomID string, rng domain.DateRange) ([]*domain.InventoryBlock, error) {
	return r.List(ctx, domain.BlocksFilter{RoomID: &roomID, From: &rng.Start, To: &rng.End})
}

// List блокировки по фильтру, отсортированные по дате начала
func (r *Repository) List(ctx context.Context, filter domain.BlocksFilter) ([]*domain.InventoryBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(blockColumns...).
		From("inventory_blocks").
		OrderBy("start_date ASC")

	if filter.Location != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"location": *filter.Location})
	}
	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_date": domain.DateOf(*filter.From)})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_date": domain.DateOf(*filter.To)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.InventoryBlock, 0)
	for rows.Next() {
		block, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// Delete снимает блокировку
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("inventory_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBlock(row rowScanner) (*domain.InventoryBlock, error) {
	var block domain.InventoryBlock
	var createdAt sql.NullTime

	err := row.Scan(
		&block.ID,
		&block.Location,
		&block.RoomID,
		&block.UnitID,
		&block.StartDate,
		&block.EndDate,
		&block.Reason,
		&block.Notes,
		&block.CreatedBy,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	block.StartDate = domain.DateOf(block.StartDate)
	block.EndDate = domain.DateOf(block.EndDate)
	block.CreatedAt = createdAt.Time

	return &block, nil
}
