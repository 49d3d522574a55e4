package room

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

var roomColumns = []string{
	"id",
	"location",
	"type",
	"name",
	"capacity",
	"max_guests",
	"base_price",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога комнат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает конфигурацию комнаты по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.RoomConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// List возвращает каталог, опционально только для одной точки
func (r *Repository) List(ctx context.Context, location *domain.Location) ([]*domain.RoomConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("location ASC, id ASC")

	if location != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"location": *location})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.RoomConfig, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// Update сохраняет изменяемые администратором поля (цена, вместимость, maxGuests, название)
func (r *Repository) Update(ctx context.Context, room *domain.RoomConfig) (*domain.RoomConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("name", room.Name).
		Set("capacity", room.Capacity).
		Set("max_guests", room.MaxGuests).
		Set("base_price", room.BasePrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": room.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if pgerr.IsCheckViolation(err) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, pgerr.Constraint(err))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return room, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.RoomConfig, error) {
	var room domain.RoomConfig
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&room.ID,
		&room.Location,
		&room.Type,
		&room.Name,
		&room.Capacity,
		&room.MaxGuests,
		&room.BasePrice,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}
