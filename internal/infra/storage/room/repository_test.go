package room_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HostelService/internal/domain"
	"github.com/m04kA/SMC-HostelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HostelService/internal/testutil"
	"github.com/m04kA/SMC-HostelService/pkg/dbmetrics"
)

func setup(t *testing.T) *room.Repository {
	t.Helper()
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	testutil.ApplyMigrations(t, ctx, db)

	// Сид мог быть изменён предыдущими тестами
	_, err := db.ExecContext(ctx, `UPDATE rooms SET capacity = 1, max_guests = 4, base_price = 95.00 WHERE id = 'hideout_suite'`)
	require.NoError(t, err)

	return room.NewRepository(dbmetrics.Wrap(db, nil))
}

func TestRepository_GetAndList(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()

	suite, err := repo.GetByID(ctx, "hideout_suite")
	require.NoError(t, err)
	assert.Equal(t, domain.RoomTypeSuite, suite.Type)
	assert.Equal(t, domain.LocationHideout, suite.Location)
	assert.Equal(t, 1, suite.Capacity)
	assert.Equal(t, 4, suite.MaxGuests)

	_, err = repo.GetByID(ctx, "pueblo_penthouse")
	assert.ErrorIs(t, err, room.ErrRoomNotFound)

	loc := domain.LocationPueblo
	pueblo, err := repo.List(ctx, &loc)
	require.NoError(t, err)
	require.NotEmpty(t, pueblo)
	for _, r := range pueblo {
		assert.Equal(t, domain.LocationPueblo, r.Location)
	}

	all, err := repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Greater(t, len(all), len(pueblo))
}

func TestRepository_Update(t *testing.T) {
	repo := setup(t)
	ctx := context.Background()

	suite, err := repo.GetByID(ctx, "hideout_suite")
	require.NoError(t, err)

	suite.BasePrice = 110
	suite.Capacity = 2
	updated, err := repo.Update(ctx, suite)
	require.NoError(t, err)
	assert.False(t, updated.UpdatedAt.IsZero())

	got, err := repo.GetByID(ctx, "hideout_suite")
	require.NoError(t, err)
	assert.Equal(t, 110.0, got.BasePrice)
	assert.Equal(t, 2, got.Capacity)

	got.Capacity = 0
	_, err = repo.Update(ctx, got)
	assert.ErrorIs(t, err, room.ErrInvalidConfig)

	_, err = repo.Update(ctx, &domain.RoomConfig{ID: "nope", Capacity: 1, MaxGuests: 1})
	assert.ErrorIs(t, err, room.ErrRoomNotFound)
}
