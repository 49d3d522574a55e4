package blocks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HostelService/internal/domain"
	"github.com/m04kA/SMC-HostelService/internal/service/blocks/models"
	"github.com/m04kA/SMC-HostelService/internal/testutil"
	"github.com/m04kA/SMC-HostelService/pkg/ptr"
)

func date(d int) time.Time {
	return time.Date(2026, 11, d, 0, 0, 0, 0, time.UTC)
}

func newService() (*Service, *testutil.MemoryLedger, *testutil.Notifier, *testutil.Metrics) {
	store := testutil.NewMemoryLedger()
	store.SeedBlocks(
		&domain.InventoryBlock{ID: "k1", Location: domain.LocationPueblo, RoomID: "pueblo_dorm_mixed_8",
			UnitID: ptr.Ptr("bed-3"), StartDate: date(1), EndDate: date(4), Reason: domain.BlockReasonMaintenance},
		&domain.InventoryBlock{ID: "k2", Location: domain.LocationHideout, RoomID: "hideout_suite",
			StartDate: date(10), EndDate: date(12), Reason: domain.BlockReasonOwnerUse},
	)
	notifier := &testutil.Notifier{}
	m := testutil.NewMetrics()
	return NewService(store.Blocks(), notifier, m, &testutil.Logger{}), store, notifier, m
}

func TestService_List(t *testing.T) {
	svc, _, _, _ := newService()

	resp, err := svc.List(context.Background(), &models.ListBlocksRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Blocks, 2)
	assert.False(t, resp.Blocks[0].WholeRoom)
	assert.True(t, resp.Blocks[1].WholeRoom)

	resp, err = svc.List(context.Background(), &models.ListBlocksRequest{From: "2026-11-04", To: "2026-11-11"})
	require.NoError(t, err)
	require.Len(t, resp.Blocks, 1)
	assert.Equal(t, "k2", resp.Blocks[0].ID)

	_, err = svc.List(context.Background(), &models.ListBlocksRequest{Location: "nowhere"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Unblock(t *testing.T) {
	svc, store, notifier, m := newService()

	require.NoError(t, svc.Unblock(context.Background(), "k2", "staff-1"))
	assert.Equal(t, 1, store.BlockCount())
	require.Len(t, notifier.Events, 1)
	assert.Equal(t, testutil.LedgerEvent{Location: domain.LocationHideout, RoomID: "hideout_suite", Reason: unblockOperation},
		notifier.Events[0])
	assert.Equal(t, 1, m.Changes[unblockOperation])

	assert.ErrorIs(t, svc.Unblock(context.Background(), "k2", "staff-1"), ErrBlockNotFound)
}
