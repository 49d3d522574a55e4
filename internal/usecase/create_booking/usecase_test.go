package create_booking

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HostelService/internal/availability"
	"github.com/m04kA/SMC-HostelService/internal/domain"
	"github.com/m04kA/SMC-HostelService/internal/service/inventory"
	"github.com/m04kA/SMC-HostelService/internal/testutil"
	"github.com/m04kA/SMC-HostelService/pkg/ptr"
)

var (
	today = time.Date(2026, 7, 1, 9, 30, 0, 0, time.UTC)

	dorm = &domain.RoomConfig{ID: "pueblo_dorm_mixed_8", Location: domain.LocationPueblo,
		Type: domain.RoomTypeDorm, Capacity: 8, MaxGuests: 8, BasePrice: 18}
	twin = &domain.RoomConfig{ID: "hideout_private_twin", Location: domain.LocationHideout,
		Type: domain.RoomTypePrivate, Capacity: 3, MaxGuests: 2, BasePrice: 48}
)

type fixture struct {
	uc       *UseCase
	store    *testutil.MemoryLedger
	notifier *testutil.Notifier
	metrics  *testutil.Metrics
	log      *testutil.Logger
}

func newFixture(opts ...availability.Option) *fixture {
	store := testutil.NewMemoryLedger()
	log := &testutil.Logger{}
	engine := availability.NewEngine(availability.NewStaticCatalog(dorm, twin), log, opts...)
	inv := inventory.NewService(store, store.Blocks(), engine, nil, log)
	notifier := &testutil.Notifier{}
	m := testutil.NewMetrics()

	uc := NewUseCase(store, inv, &testutil.TxManager{}, notifier, m, log).
		WithTimeProvider(testutil.Clock{T: today})

	return &fixture{uc: uc, store: store, notifier: notifier, metrics: m, log: log}
}

func day(offset int) time.Time {
	return domain.DateOf(today).AddDate(0, 0, offset)
}

func dormRequest(guests int, checkIn, checkOut int) *Request {
	return &Request{
		Location:  domain.LocationPueblo,
		RoomID:    dorm.ID,
		GuestName: "Ana",
		Guests:    guests,
		CheckIn:   day(checkIn),
		CheckOut:  day(checkOut),
		StaffID:   "staff-1",
	}
}

func TestUseCase_Execute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), dormRequest(3, 1, 4))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, domain.StatusPending, resp.Status)
	assert.Equal(t, 3, resp.Nights)
	assert.InDelta(t, 18.0*3*3, resp.TotalPrice, 0.001)
	assert.Equal(t, []string{dorm.ID}, f.store.LockedRooms)

	require.NotNil(t, f.store.Booking(resp.ID))
	require.Len(t, f.notifier.Events, 1)
	assert.Equal(t, testutil.LedgerEvent{Location: domain.LocationPueblo, RoomID: dorm.ID, Reason: operation}, f.notifier.Events[0])
	assert.Equal(t, 1, f.metrics.Changes[operation])
}

func TestUseCase_Execute_PrivatePricePerRoom(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		Location: domain.LocationHideout, RoomID: twin.ID, GuestName: "Luis", Guests: 2,
		CheckIn: day(0), CheckOut: day(2), Status: domain.StatusConfirmed,
	})
	require.NoError(t, err)
	assert.InDelta(t, 48.0*2, resp.TotalPrice, 0.001)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
}

func TestUseCase_Execute_DormFillsUp(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), dormRequest(6, 1, 3))
	require.NoError(t, err)
	_, err = f.uc.Execute(context.Background(), dormRequest(2, 2, 5))
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), dormRequest(1, 2, 3))
	assert.ErrorIs(t, err, ErrOverbooking)
	assert.Equal(t, 1, f.metrics.Rejections[operation])

	// день выезда первой группы снова свободен
	_, err = f.uc.Execute(context.Background(), dormRequest(6, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, 3, f.store.BookingCount())
}

func TestUseCase_Execute_PrivateInventoryCount(t *testing.T) {
	f := newFixture()
	req := func() *Request {
		return &Request{Location: domain.LocationHideout, RoomID: twin.ID, GuestName: "G", Guests: 1,
			CheckIn: day(5), CheckOut: day(7)}
	}

	for i := 0; i < twin.Capacity; i++ {
		_, err := f.uc.Execute(context.Background(), req())
		require.NoError(t, err)
	}

	_, err := f.uc.Execute(context.Background(), req())
	assert.ErrorIs(t, err, ErrOverbooking)
}

func TestUseCase_Execute_UnitCollision(t *testing.T) {
	f := newFixture()

	first := dormRequest(1, 1, 3)
	first.UnitID = ptr.Ptr("bed-4")
	_, err := f.uc.Execute(context.Background(), first)
	require.NoError(t, err)

	second := dormRequest(1, 2, 4)
	second.UnitID = ptr.Ptr("bed-4")
	_, err = f.uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrOverbooking)

	second.UnitID = ptr.Ptr("bed-5")
	_, err = f.uc.Execute(context.Background(), second)
	assert.NoError(t, err)
}

func TestUseCase_Execute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *Request)
		wantErr error
	}{
		{"unknown location", func(r *Request) { r.Location = "madrid" }, ErrInvalidInput},
		{"empty room", func(r *Request) { r.RoomID = " " }, ErrInvalidInput},
		{"empty guest name", func(r *Request) { r.GuestName = "" }, ErrInvalidInput},
		{"zero guests", func(r *Request) { r.Guests = 0 }, ErrInvalidInput},
		{"guests above any capacity", func(r *Request) { r.Guests = math.MaxInt }, ErrInvalidInput},
		{"checkout before checkin", func(r *Request) { r.CheckOut = r.CheckIn }, ErrInvalidInput},
		{"bad initial status", func(r *Request) { r.Status = domain.StatusCheckedIn }, ErrInvalidInput},
		{"check-in yesterday", func(r *Request) { r.CheckIn = day(-1) }, ErrDateInPast},
		{"stay too long", func(r *Request) { r.CheckOut = day(1 + domain.MaxStayNights + 1) }, ErrStayTooLong},
		{"room at another location", func(r *Request) { r.Location = domain.LocationHideout }, ErrLocationMismatch},
		{"too many for private", func(r *Request) {
			r.Location, r.RoomID, r.Guests = domain.LocationHideout, twin.ID, 3
		}, ErrTooManyGuests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := dormRequest(1, 1, 2)
			tt.modify(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.store.BookingCount())
			assert.Empty(t, f.notifier.Events)
		})
	}
}

func TestUseCase_Execute_UnknownRoom(t *testing.T) {
	req := dormRequest(2, 1, 2)
	req.RoomID = "pueblo_dorm_attic"

	_, err := newFixture().uc.Execute(context.Background(), req)
	require.NoError(t, err, "fallback capacity is used for rooms outside the catalog")

	_, err = newFixture(availability.WithStrictCatalog(true)).uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestUseCase_Execute_StorageError(t *testing.T) {
	f := newFixture()
	f.store.Err = errors.New("connection refused")

	_, err := f.uc.Execute(context.Background(), dormRequest(1, 1, 2))
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, f.log.Count("ERROR"))
}

func TestUseCase_Execute_NotifierErrorIsNotFatal(t *testing.T) {
	f := newFixture()
	f.notifier.Err = errors.New("redis down")

	_, err := f.uc.Execute(context.Background(), dormRequest(1, 1, 2))
	require.NoError(t, err)
	assert.Equal(t, 1, f.store.BookingCount())
}

func TestUseCase_Execute_ConcurrentLastBed(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Execute(context.Background(), dormRequest(7, 1, 3))
	require.NoError(t, err)

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := dormRequest(1, 1, 3)
			req.UnitID = ptr.Ptr("bed-8")
			if _, err := f.uc.Execute(context.Background(), req); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 2, f.store.BookingCount())
}
