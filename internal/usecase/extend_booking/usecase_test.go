package extend_booking

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
	base = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	dorm = &domain.RoomConfig{ID: "hideout_dorm_mixed_10", Location: domain.LocationHideout,
		Type: domain.RoomTypeDorm, Capacity: 10, MaxGuests: 10, BasePrice: 16}
	suite = &domain.RoomConfig{ID: "hideout_suite", Location: domain.LocationHideout,
		Type: domain.RoomTypeSuite, Capacity: 1, MaxGuests: 4, BasePrice: 95}
)

func day(offset int) time.Time {
	return base.AddDate(0, 0, offset)
}

func newFixture() (*UseCase, *testutil.MemoryLedger, *testutil.Notifier, *testutil.Metrics) {
	store := testutil.NewMemoryLedger()
	log := &testutil.Logger{}
	engine := availability.NewEngine(availability.NewStaticCatalog(dorm, suite), log)
	inv := inventory.NewService(store, store.Blocks(), engine, nil, log)
	notifier := &testutil.Notifier{}
	m := testutil.NewMetrics()

	return NewUseCase(store, inv, &testutil.TxManager{}, notifier, m, log), store, notifier, m
}

func booking(id, roomID string, unit *string, guests, checkIn, checkOut int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{ID: id, Location: domain.LocationHideout, RoomID: roomID, UnitID: unit,
		GuestName: "G", Guests: guests, CheckIn: day(checkIn), CheckOut: day(checkOut), Status: status}
}

func TestUseCase_Extend(t *testing.T) {
	uc, store, notifier, m := newFixture()
	store.Seed(booking("b1", dorm.ID, nil, 2, 0, 3, domain.StatusCheckedIn))

	resp, err := uc.Execute(context.Background(), &Request{BookingID: "b1", NewCheckOut: day(5)})
	require.NoError(t, err)

	assert.Equal(t, day(3), resp.PreviousCheckOut)
	assert.Equal(t, day(5), resp.CheckOut)
	assert.Equal(t, 5, resp.Nights)
	assert.InDelta(t, 16.0*2*5, resp.TotalPrice, 0.001)

	stored := store.Booking("b1")
	assert.Equal(t, day(5), stored.CheckOut)
	assert.InDelta(t, resp.TotalPrice, stored.TotalPrice, 0.001)
	assert.Len(t, notifier.Events, 1)
	assert.Equal(t, 1, m.Changes[operation])
}

func TestUseCase_ExtendIntoFullRoom(t *testing.T) {
	uc, store, _, m := newFixture()
	store.Seed(
		booking("b1", suite.ID, nil, 2, 0, 3, domain.StatusConfirmed),
		booking("b2", suite.ID, nil, 3, 4, 6, domain.StatusConfirmed),
	)

	// ночь 3 свободна: продление до дня заезда следующей брони проходит
	_, err := uc.Execute(context.Background(), &Request{BookingID: "b1", NewCheckOut: day(4)})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{BookingID: "b1", NewCheckOut: day(5)})
	assert.ErrorIs(t, err, ErrOverbooking)
	assert.Equal(t, day(4), store.Booking("b1").CheckOut)
	assert.Equal(t, 1, m.Rejections[operation])
}

func TestUseCase_ExtendKeepsBed(t *testing.T) {
	uc, store, _, _ := newFixture()
	store.Seed(
		booking("b1", dorm.ID, ptr.Ptr("bed-2"), 1, 0, 2, domain.StatusConfirmed),
		booking("b2", dorm.ID, ptr.Ptr("bed-2"), 1, 3, 5, domain.StatusConfirmed),
	)

	_, err := uc.Execute(context.Background(), &Request{BookingID: "b1", NewCheckOut: day(4)})
	assert.ErrorIs(t, err, ErrOverbooking, "the same bed is taken from day 3")
}

func TestUseCase_ExtendRejections(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.BookingStatus
		newOut  time.Time
		id      string
		wantErr error
	}{
		{"missing booking", domain.StatusConfirmed, day(5), "nope", ErrBookingNotFound},
		{"checked out", domain.StatusCheckedOut, day(5), "b1", ErrCannotExtend},
		{"cancelled", domain.StatusCancelled, day(5), "b1", ErrCannotExtend},
		{"same checkout", domain.StatusConfirmed, day(3), "b1", ErrInvalidCheckOut},
		{"earlier checkout", domain.StatusConfirmed, day(2), "b1", ErrInvalidCheckOut},
		{"too long", domain.StatusConfirmed, day(domain.MaxStayNights + 1), "b1", ErrStayTooLong},
		{"empty id", domain.StatusConfirmed, day(5), "", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, store, notifier, _ := newFixture()
			store.Seed(booking("b1", dorm.ID, nil, 1, 0, 3, tt.status))

			_, err := uc.Execute(context.Background(), &Request{BookingID: tt.id, NewCheckOut: tt.newOut})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, day(3), store.Booking("b1").CheckOut)
			assert.Empty(t, notifier.Events)
		})
	}
}
