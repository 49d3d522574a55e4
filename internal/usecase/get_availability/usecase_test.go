package get_availability

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
	now = time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)

	dorm = &domain.RoomConfig{ID: "hideout_dorm_mixed_10", Name: "Mixed dorm", Location: domain.LocationHideout,
		Type: domain.RoomTypeDorm, Capacity: 10, MaxGuests: 10, BasePrice: 16}
	twin = &domain.RoomConfig{ID: "hideout_private_twin", Name: "Twin", Location: domain.LocationHideout,
		Type: domain.RoomTypePrivate, Capacity: 3, MaxGuests: 2, BasePrice: 48}
)

type listCatalog []*domain.RoomConfig

func (c listCatalog) List(location domain.Location) []*domain.RoomConfig {
	result := make([]*domain.RoomConfig, 0, len(c))
	for _, r := range c {
		if r.Location == location {
			result = append(result, r)
		}
	}
	return result
}

func day(offset int) time.Time {
	return domain.DateOf(now).AddDate(0, 0, offset)
}

func newUseCase(opts ...availability.Option) (*UseCase, *testutil.MemoryLedger) {
	store := testutil.NewMemoryLedger()
	log := &testutil.Logger{}
	engine := availability.NewEngine(availability.NewStaticCatalog(dorm, twin), log, opts...)
	inv := inventory.NewService(store, store.Blocks(), engine, nil, log)

	return NewUseCase(inv, listCatalog{dorm, twin}, log).WithTimeProvider(testutil.Clock{T: now}), store
}

func TestUseCase_AllRoomsOfLocation(t *testing.T) {
	uc, store := newUseCase()
	store.Seed(&domain.Booking{ID: "b1", Location: domain.LocationHideout, RoomID: dorm.ID, Guests: 7,
		CheckIn: day(1), CheckOut: day(3), Status: domain.StatusConfirmed})
	store.SeedBlocks(&domain.InventoryBlock{ID: "k1", Location: domain.LocationHideout, RoomID: twin.ID,
		StartDate: day(0), EndDate: day(10), UnitID: ptr.Ptr("room-3")})

	resp, err := uc.Execute(context.Background(), &Request{
		Location: domain.LocationHideout, CheckIn: day(2), CheckOut: day(4), Guests: 2,
	})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 2)
	assert.Equal(t, 2, resp.Nights)

	byID := map[string]RoomAvailability{}
	for _, r := range resp.Rooms {
		byID[r.RoomID] = r
	}

	assert.True(t, byID[dorm.ID].Available)
	assert.Equal(t, 3, byID[dorm.ID].Capacity.Remaining)
	assert.Equal(t, 10, byID[dorm.ID].Capacity.Total)
	assert.InDelta(t, 16.0*2*2, byID[dorm.ID].EstimatedPrice, 0.001)

	assert.True(t, byID[twin.ID].Available)
	assert.Equal(t, 2, byID[twin.ID].Capacity.Remaining)
	assert.InDelta(t, 48.0*2, byID[twin.ID].EstimatedPrice, 0.001)
}

func TestUseCase_SingleRoomWithExclude(t *testing.T) {
	uc, store := newUseCase()
	store.Seed(&domain.Booking{ID: "b1", Location: domain.LocationHideout, RoomID: dorm.ID, Guests: 10,
		CheckIn: day(0), CheckOut: day(2), Status: domain.StatusConfirmed})

	resp, err := uc.Execute(context.Background(), &Request{
		Location: domain.LocationHideout, RoomID: dorm.ID, CheckIn: day(0), CheckOut: day(2),
	})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.False(t, resp.Rooms[0].Available)
	assert.Equal(t, 1, resp.Guests)

	resp, err = uc.Execute(context.Background(), &Request{
		Location: domain.LocationHideout, RoomID: dorm.ID, CheckIn: day(0), CheckOut: day(2),
		Guests: 10, ExcludeBookingID: "b1",
	})
	require.NoError(t, err)
	assert.True(t, resp.Rooms[0].Available)
}

func TestUseCase_UnknownRoom(t *testing.T) {
	uc, _ := newUseCase()
	resp, err := uc.Execute(context.Background(), &Request{
		Location: domain.LocationHideout, RoomID: "hideout_dorm_new", CheckIn: day(0), CheckOut: day(1),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.FallbackDormCapacity, resp.Rooms[0].Capacity.Total)

	strict, _ := newUseCase(availability.WithStrictCatalog(true))
	_, err = strict.Execute(context.Background(), &Request{
		Location: domain.LocationHideout, RoomID: "hideout_dorm_new", CheckIn: day(0), CheckOut: day(1),
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestUseCase_Validation(t *testing.T) {
	uc, _ := newUseCase()

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"bad location", Request{Location: "x", CheckIn: day(0), CheckOut: day(1)}, ErrInvalidInput},
		{"negative guests", Request{Location: domain.LocationHideout, CheckIn: day(0), CheckOut: day(1), Guests: -1}, ErrInvalidInput},
		{"guests above any capacity", Request{Location: domain.LocationHideout, CheckIn: day(0), CheckOut: day(1), Guests: domain.MaxCapacity + 1}, ErrInvalidInput},
		{"empty range", Request{Location: domain.LocationHideout, CheckIn: day(1), CheckOut: day(1)}, ErrInvalidInput},
		{"past", Request{Location: domain.LocationHideout, CheckIn: day(-1), CheckOut: day(1)}, ErrDateInPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
