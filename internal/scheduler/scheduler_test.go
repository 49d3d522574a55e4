package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HostelService/internal/domain"
	"github.com/m04kA/SMC-HostelService/internal/testutil"
)

type fakeCatalog struct {
	reloads int
}

func (c *fakeCatalog) Reload(context.Context) error {
	c.reloads++
	return nil
}

func date(d int) time.Time {
	return time.Date(2026, 4, d, 0, 0, 0, 0, time.UTC)
}

func TestNew_InvalidConfig(t *testing.T) {
	store := testutil.NewMemoryLedger()

	_, err := New(Config{NoShowAt: "25:00"}, store, nil, testutil.NewMetrics(), &testutil.Logger{})
	assert.Error(t, err)

	_, err = New(Config{NoShowAt: "03:00", Timezone: "Mars/Olympus"}, store, nil, testutil.NewMetrics(), &testutil.Logger{})
	assert.Error(t, err)
}

func TestScheduler_Jobs(t *testing.T) {
	s, err := New(Config{NoShowAt: "03:00", Timezone: "Europe/Madrid", CatalogReloadInterval: time.Minute},
		testutil.NewMemoryLedger(), &fakeCatalog{}, testutil.NewMetrics(), &testutil.Logger{})
	require.NoError(t, err)
	assert.Len(t, s.cron.Jobs(), 2)

	s.Start()
	require.NoError(t, s.Shutdown())
}

func TestScheduler_SweepNoShows(t *testing.T) {
	store := testutil.NewMemoryLedger()
	store.Seed(
		&domain.Booking{ID: "late", Location: domain.LocationPueblo, RoomID: "r", Guests: 1,
			CheckIn: date(9), CheckOut: date(12), Status: domain.StatusConfirmed},
		&domain.Booking{ID: "pending", Location: domain.LocationPueblo, RoomID: "r", Guests: 1,
			CheckIn: date(8), CheckOut: date(9), Status: domain.StatusPending},
		&domain.Booking{ID: "today", Location: domain.LocationPueblo, RoomID: "r", Guests: 1,
			CheckIn: date(10), CheckOut: date(11), Status: domain.StatusConfirmed},
		&domain.Booking{ID: "inhouse", Location: domain.LocationPueblo, RoomID: "r", Guests: 1,
			CheckIn: date(7), CheckOut: date(11), Status: domain.StatusCheckedIn},
	)
	m := testutil.NewMetrics()

	s, err := New(Config{NoShowAt: "03:00", Timezone: "Europe/Madrid"}, store, nil, m, &testutil.Logger{})
	require.NoError(t, err)
	// 23:30 UTC 9 апреля - уже 10 апреля в Мадриде
	s.WithTimeProvider(testutil.Clock{T: time.Date(2026, 4, 9, 23, 30, 0, 0, time.UTC)})

	count, err := s.SweepNoShows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, m.Changes[noShowOperation])

	assert.Equal(t, domain.StatusNoShow, store.Booking("late").Status)
	assert.Equal(t, domain.StatusNoShow, store.Booking("pending").Status)
	assert.Equal(t, domain.StatusConfirmed, store.Booking("today").Status)
	assert.Equal(t, domain.StatusCheckedIn, store.Booking("inhouse").Status)
}

func TestScheduler_SweepError(t *testing.T) {
	store := testutil.NewMemoryLedger()
	store.Err = errors.New("db down")

	s, err := New(Config{NoShowAt: "03:00"}, store, nil, testutil.NewMetrics(), &testutil.Logger{})
	require.NoError(t, err)

	_, err = s.SweepNoShows(context.Background())
	assert.Error(t, err)
}
