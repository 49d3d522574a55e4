package booking_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HostelService/internal/domain"
	"github.com/m04kA/SMC-HostelService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HostelService/internal/testutil"
	"github.com/m04kA/SMC-HostelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HostelService/pkg/ptr"
	"github.com/m04kA/SMC-HostelService/pkg/txmanager"
)

func setup(t *testing.T) (*booking.Repository, *txmanager.TransactionManager) {
	t.Helper()
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	testutil.ApplyMigrations(t, ctx, db)
	testutil.TruncateLedger(t, ctx, db)

	wrapped := dbmetrics.Wrap(db, nil)
	return booking.NewRepository(wrapped), txmanager.NewTransactionManager(wrapped)
}

func newBooking(roomID string, unit *string, from, to time.Time) *domain.Booking {
	return &domain.Booking{
		ID:         uuid.NewString(),
		Location:   domain.LocationPueblo,
		RoomID:     roomID,
		UnitID:     unit,
		GuestName:  "Ana",
		Guests:     1,
		CheckIn:    from,
		CheckOut:   to,
		Status:     domain.StatusPending,
		TotalPrice: 36,
	}
}

func date(m time.Month, d int) time.Time {
	return time.Date(2026, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, newBooking("pueblo_dorm_mixed_8", ptr.Ptr("3"), date(time.May, 1), date(time.May, 3)))
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "pueblo_dorm_mixed_8", got.RoomID)
	assert.Equal(t, "3", ptr.Deref(got.UnitID, ""))
	assert.Equal(t, date(time.May, 1), got.CheckIn)
	assert.Equal(t, date(time.May, 3), got.CheckOut)
	assert.Equal(t, 36.0, got.TotalPrice)

	_, err = repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, booking.ErrBookingNotFound)
}

func TestRepository_GetActiveByRoomAndRange(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()
	room := "pueblo_private_double"

	_, err := repo.Create(ctx, newBooking(room, nil, date(time.June, 1), date(time.June, 5)))
	require.NoError(t, err)
	inside, err := repo.Create(ctx, newBooking(room, nil, date(time.June, 6), date(time.June, 8)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newBooking(room, nil, date(time.June, 10), date(time.June, 12)))
	require.NoError(t, err)
	cancelled, err := repo.Create(ctx, newBooking(room, nil, date(time.June, 6), date(time.June, 8)))
	require.NoError(t, err)
	require.NoError(t, repo.Cancel(ctx, cancelled.ID, "guest request"))

	window := domain.DateRange{Start: date(time.June, 5), End: date(time.June, 10)}
	got, err := repo.GetActiveByRoomAndRange(ctx, room, window, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, inside.ID, got[0].ID)

	got, err = repo.GetActiveByRoomAndRange(ctx, room, window, inside.ID)
	require.NoError(t, err)
	assert.Empty(t, got)

}

func TestRepository_UnitExclusionConstraint(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()
	room := "pueblo_dorm_mixed_8"

	_, err := repo.Create(ctx, newBooking(room, ptr.Ptr("3"), date(time.January, 10), date(time.January, 15)))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newBooking(room, ptr.Ptr("3"), date(time.January, 12), date(time.January, 13)))
	assert.ErrorIs(t, err, booking.ErrOverlapConflict)

	_, err = repo.Create(ctx, newBooking(room, ptr.Ptr("3"), date(time.January, 15), date(time.January, 16)))
	assert.NoError(t, err, "checkout day is free")

	_, err = repo.Create(ctx, newBooking(room, ptr.Ptr("4"), date(time.January, 12), date(time.January, 13)))
	assert.NoError(t, err)
}

func TestRepository_ConcurrentSameBed(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()
	room := "hideout_dorm_mixed_10"

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Create(ctx, newBooking(room, ptr.Ptr("1"), date(time.February, 1), date(time.February, 4)))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, booking.ErrOverlapConflict), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)
}

func TestRepository_LockRoomRequiresTransaction(t *testing.T) {
	repo, tx := setup(t)
	ctx := context.Background()

	assert.ErrorIs(t, repo.LockRoom(ctx, "pueblo_dorm_mixed_8"), booking.ErrTransaction)

	err := tx.Do(ctx, func(ctx context.Context) error {
		return repo.LockRoom(ctx, "pueblo_dorm_mixed_8")
	})
	assert.NoError(t, err)
}

func TestRepository_StayAndStatus(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()

	b, err := repo.Create(ctx, newBooking("hideout_suite", nil, date(time.March, 1), date(time.March, 3)))
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStay(ctx, b.ID, date(time.March, 6), 475))
	require.NoError(t, repo.UpdateStatus(ctx, b.ID, domain.StatusConfirmed))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, date(time.March, 6), got.CheckOut)
	assert.Equal(t, 475.0, got.TotalPrice)
	assert.Equal(t, domain.StatusConfirmed, got.Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, uuid.NewString(), domain.StatusConfirmed), booking.ErrBookingNotFound)
}

func TestRepository_MarkNoShows(t *testing.T) {
	repo, _ := setup(t)
	ctx := context.Background()

	missed, err := repo.Create(ctx, newBooking("pueblo_dorm_female_6", nil, date(time.April, 1), date(time.April, 3)))
	require.NoError(t, err)
	future, err := repo.Create(ctx, newBooking("pueblo_dorm_female_6", nil, date(time.April, 10), date(time.April, 12)))
	require.NoError(t, err)

	updated, err := repo.MarkNoShows(ctx, date(time.April, 5))
	require.NoError(t, err)
	require.Len(t, updated, 1)
	assert.Equal(t, missed.ID, updated[0].ID)

	got, err := repo.GetByID(ctx, future.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)

	list, err := repo.List(ctx, domain.BookingsFilter{Status: ptr.Ptr(domain.StatusNoShow)})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
