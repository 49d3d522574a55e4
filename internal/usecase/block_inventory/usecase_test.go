package block_inventory

import (
	"context"
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
	now = time.Date(2026, 5, 4, 15, 0, 0, 0, time.UTC)

	dorm = &domain.RoomConfig{ID: "pueblo_dorm_mixed_8", Location: domain.LocationPueblo,
		Type: domain.RoomTypeDorm, Capacity: 8, MaxGuests: 8, BasePrice: 18}
	double = &domain.RoomConfig{ID: "pueblo_private_double", Location: domain.LocationPueblo,
		Type: domain.RoomTypePrivate, Capacity: 4, MaxGuests: 2, BasePrice: 55}
)

func day(offset int) time.Time {
	return domain.DateOf(now).AddDate(0, 0, offset)
}

type fixture struct {
	uc       *UseCase
	inv      *inventory.Service
	store    *testutil.MemoryLedger
	notifier *testutil.Notifier
	metrics  *testutil.Metrics
}

func newFixture() *fixture {
	store := testutil.NewMemoryLedger()
	log := &testutil.Logger{}
	engine := availability.NewEngine(availability.NewStaticCatalog(dorm, double), log)
	inv := inventory.NewService(store, store.Blocks(), engine, nil, log)
	notifier := &testutil.Notifier{}
	m := testutil.NewMetrics()

	uc := NewUseCase(store.Blocks(), inv, &testutil.TxManager{}, notifier, m, log).
		WithTimeProvider(testutil.Clock{T: now})

	return &fixture{uc: uc, inv: inv, store: store, notifier: notifier, metrics: m}
}

func blockRequest(roomID string, unit *string, start, end int) *Request {
	return &Request{
		Location:  domain.LocationPueblo,
		RoomID:    roomID,
		UnitID:    unit,
		StartDate: day(start),
		EndDate:   day(end),
		Reason:    domain.BlockReasonMaintenance,
		StaffID:   "staff-7",
	}
}

func TestUseCase_WholeRoomBlock(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), blockRequest(double.ID, nil, 1, 4))
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "staff-7", resp.CreatedBy)
	assert.Equal(t, 1, f.store.BlockCount())
	require.Len(t, f.notifier.Events, 1)

	// whole-room блок занимает все 4 комнаты типа
	remaining, err := f.inv.RemainingNow(context.Background(), domain.LocationPueblo, double.ID,
		domain.DateRange{Start: day(2), End: day(3)})
	require.NoError(t, err)
	assert.Zero(t, remaining)

	ok, err := f.inv.Check(context.Background(), availability.Query{
		Location: domain.LocationPueblo, RoomID: double.ID,
		Range: domain.DateRange{Start: day(4), End: day(5)}, Guests: 1,
	})
	require.NoError(t, err)
	assert.True(t, ok, "end date of the block is free")
}

func TestUseCase_WholeRoomBlockNeedsEmptyRoom(t *testing.T) {
	f := newFixture()
	f.store.Seed(&domain.Booking{ID: "b1", Location: domain.LocationPueblo, RoomID: dorm.ID, Guests: 1,
		CheckIn: day(2), CheckOut: day(3), Status: domain.StatusConfirmed})

	_, err := f.uc.Execute(context.Background(), blockRequest(dorm.ID, nil, 1, 4))
	assert.ErrorIs(t, err, ErrOverbooking)
	assert.Zero(t, f.store.BlockCount())
	assert.Equal(t, 1, f.metrics.Rejections[operation])

	// после выезда гостя комнату можно закрыть
	_, err = f.uc.Execute(context.Background(), blockRequest(dorm.ID, nil, 3, 5))
	assert.NoError(t, err)
}

func TestUseCase_UnitBlock(t *testing.T) {
	f := newFixture()
	f.store.Seed(&domain.Booking{ID: "b1", Location: domain.LocationPueblo, RoomID: dorm.ID, UnitID: ptr.Ptr("bed-1"),
		Guests: 1, CheckIn: day(0), CheckOut: day(2), Status: domain.StatusCheckedIn})

	_, err := f.uc.Execute(context.Background(), blockRequest(dorm.ID, ptr.Ptr("bed-1"), 1, 3))
	assert.ErrorIs(t, err, ErrOverbooking, "bed is occupied")

	_, err = f.uc.Execute(context.Background(), blockRequest(dorm.ID, ptr.Ptr("bed-2"), 1, 3))
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), blockRequest(dorm.ID, ptr.Ptr("bed-2"), 2, 4))
	assert.ErrorIs(t, err, ErrOverbooking, "bed is already blocked")

	remaining, err := f.inv.RemainingNow(context.Background(), domain.LocationPueblo, dorm.ID,
		domain.DateRange{Start: day(1), End: day(2)})
	require.NoError(t, err)
	assert.Equal(t, 6, remaining)
}

func TestUseCase_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *Request)
		wantErr error
	}{
		{"unknown reason", func(r *Request) { r.Reason = "party" }, ErrInvalidInput},
		{"empty range", func(r *Request) { r.EndDate = r.StartDate }, ErrInvalidInput},
		{"no staff", func(r *Request) { r.StaffID = "" }, ErrInvalidInput},
		{"blank unit", func(r *Request) { r.UnitID = ptr.Ptr(" ") }, ErrInvalidInput},
		{"in the past", func(r *Request) { r.StartDate = day(-2) }, ErrDateInPast},
		{"wrong location", func(r *Request) { r.Location = domain.LocationHideout }, ErrLocationMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := blockRequest(dorm.ID, nil, 1, 2)
			tt.modify(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, f.store.BlockCount())
		})
	}
}
