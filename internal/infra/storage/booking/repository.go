package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-HostelService/internal/domain"
	"github.com/m04kA/SMC-HostelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HostelService/pkg/pgerr"
	"github.com/m04kA/SMC-HostelService/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"location",
	"room_id",
	"unit_id",
	"guest_name",
	"guest_email",
	"guests",
	"check_in",
	"check_out",
	"status",
	"total_price",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
//
// Пересечение по конкретной кровати/комнате ловит EXCLUDE ограничение
// bookings_unit_no_overlap, в этом случае возвращается ErrOverlapConflict.
// Агрегатную вместимость БД не проверяет: её защищает LockRoom внутри транзакции.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"location",
			"room_id",
			"unit_id",
			"guest_name",
			"guest_email",
			"guests",
			"check_in",
			"check_out",
			"status",
			"total_price",
			"notes",
		).
		Values(
			booking.ID,
			booking.Location,
			booking.RoomID,
			booking.UnitID,
			booking.GuestName,
			booking.GuestEmail,
			booking.Guests,
			domain.DateOf(booking.CheckIn),
			domain.DateOf(booking.CheckOut),
			booking.Status,
			booking.TotalPrice,
			booking.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	switch {
	case pgerr.IsExclusionViolation(err):
		return nil, fmt.Errorf("%w: Create - %s", ErrOverlapConflict, pgerr.Constraint(err))
	case pgerr.IsUniqueViolation(err):
		return nil, fmt.Errorf("%w: Create - id=%s", ErrDuplicateBooking, booking.ID)
	case err != nil:
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE) до конца транзакции
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - Точке и комнате
// - Статусу (Status), при его отсутствии отменённые скрыты, если не IncludeCancelled
// - Периоду (From, To): возвращаются брони, пересекающиеся с [From, To)
//
// Пример: все активные брони dorm на неделю
//
//	from, to := ...
//	filter := domain.BookingsFilter{RoomID: ptr.Ptr("pueblo_dorm_mixed_8"), From: &from, To: &to}
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	if filter.Location != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"location": *filter.Location})
	}
	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}

	// Полуоткрытое пересечение с периодом
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"check_out": domain.DateOf(*filter.From)})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"check_in": domain.DateOf(*filter.To)})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": statusStrings(domain.InactiveStatuses)})
	}

	selectBuilder = selectBuilder.OrderBy("check_in ASC, created_at ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetActiveByRoomAndRange возвращает неотменённые брони комнаты, пересекающиеся с rng
// Условие то же, что и у движка: check_in < end AND check_out > start
func (r *Repository) GetActiveByRoomAndRange(ctx context.Context, roomID string, rng domain.DateRange, excludeID string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Lt{"check_in": rng.End}).
		Where(squirrel.Gt{"check_out": rng.Start}).
		Where(squirrel.NotEq{"status": statusStrings(domain.InactiveStatuses)}).
		OrderBy("check_in ASC")

	if excludeID != "" {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByRoomAndRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByRoomAndRange - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// LockRoom берёт транзакционную advisory блокировку на комнату
// Все записи в журнал по одной комнате выполняются последовательно до COMMIT/ROLLBACK.
// Работает только внутри транзакции.
func (r *Repository) LockRoom(ctx context.Context, roomID string) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return fmt.Errorf("%w: LockRoom - called outside of transaction", ErrTransaction)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", roomID); err != nil {
		return fmt.Errorf("%w: LockRoom - room=%s: %w", ErrExecQuery, roomID, err)
	}

	return nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// UpdateStay меняет дату выезда и итоговую цену (продление или ранний выезд)
func (r *Repository) UpdateStay(ctx context.Context, id string, checkOut time.Time, totalPrice float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("check_out", domain.DateOf(checkOut)).
		Set("total_price", totalPrice).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStay - build update query: %v", ErrBuildQuery, err)
	}

	err = r.execAffectingOne(ctx, executor, "UpdateStay", query, args)
	if pgerr.IsExclusionViolation(err) {
		return fmt.Errorf("%w: UpdateStay - %s", ErrOverlapConflict, pgerr.Constraint(err))
	}
	return err
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id string, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Cancel", query, args)
}

// MarkNoShows переводит в no_show брони, гость которых так и не заехал до before
// Возвращает затронутые брони (id, точка, комната) для уведомлений
func (r *Repository) MarkNoShows(ctx context.Context, before time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusNoShow).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": statusStrings(domain.NoShowCandidateStatuses)}).
		Where(squirrel.Lt{"check_in": domain.DateOf(before)}).
		Suffix("RETURNING id, location, room_id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: MarkNoShows - build update query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: MarkNoShows - execute update: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	updated := make([]*domain.Booking, 0)
	for rows.Next() {
		b := &domain.Booking{Status: domain.StatusNoShow}
		if err := rows.Scan(&b.ID, &b.Location, &b.RoomID); err != nil {
			return nil, fmt.Errorf("%w: MarkNoShows - scan row: %v", ErrScanRow, err)
		}
		updated = append(updated, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: MarkNoShows - rows error: %v", ErrScanRow, err)
	}

	return updated, nil
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Location,
		&booking.RoomID,
		&booking.UnitID,
		&booking.GuestName,
		&booking.GuestEmail,
		&booking.Guests,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.Status,
		&booking.TotalPrice,
		&booking.Notes,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CheckIn = domain.DateOf(booking.CheckIn)
	booking.CheckOut = domain.DateOf(booking.CheckOut)
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

func statusStrings(statuses []domain.BookingStatus) []string {
	result := make([]string, len(statuses))
	for i, s := range statuses {
		result[i] = string(s)
	}
	return result
}
