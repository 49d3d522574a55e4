package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HostelService/internal/api/middleware"
	"github.com/m04kA/SMC-HostelService/internal/domain"
	"github.com/m04kA/SMC-HostelService/internal/testutil"
	createBooking "github.com/m04kA/SMC-HostelService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	got *createBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &createBooking.Response{
		ID:         "3f1c7a52-8d7e-4c53-9a55-6f1f5d0c2a10",
		Location:   req.Location,
		RoomID:     req.RoomID,
		GuestName:  req.GuestName,
		Guests:     req.Guests,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Nights:     int(req.CheckOut.Sub(req.CheckIn).Hours() / 24),
		Status:     domain.StatusPending,
		TotalPrice: 54,
		CreatedAt:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}, nil
}

func doRequest(h *Handler, body string, staff bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if staff {
		req = req.WithContext(middleware.WithStaffID(req.Context(), "recepcion-1"))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{
	"location": "pueblo",
	"roomId": "pueblo-dorm-6",
	"guestName": "Ana",
	"guests": "2",
	"checkIn": "2025-07-01",
	"checkOut": "2025-07-04"
}`

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, &testutil.Logger{})

	rec := doRequest(h, validBody, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, 2, uc.got.Guests, "guests given as a string is parsed once")
	assert.Equal(t, "recepcion-1", uc.got.StaffID)
	assert.Equal(t, domain.LocationPueblo, uc.got.Location)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-07-01", resp.CheckIn)
	assert.Equal(t, "2025-07-04", resp.CheckOut)
	assert.Equal(t, 3, resp.Nights)
}

func TestHandle_GuestsDefaultToOne(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, &testutil.Logger{})

	body := strings.Replace(validBody, `"guests": "2",`, "", 1)
	rec := doRequest(h, body, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, uc.got.Guests)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{`},
		{"unknown field", `{"location":"pueblo","userId":1}`},
		{"unknown location", strings.Replace(validBody, "pueblo", "downtown", 1)},
		{"bad date", strings.Replace(validBody, "2025-07-01", "01/07/2025", 1)},
		{"guests not a number", strings.Replace(validBody, `"2"`, `"two"`, 1)},
		{"missing guest name", strings.Replace(validBody, `"guestName": "Ana",`, "", 1)},
		{"status not allowed", strings.Replace(validBody, `"guestName"`, `"status": "checked_in", "guestName"`, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			rec := doRequest(NewHandler(uc, &testutil.Logger{}), tt.body, true)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.got, "use case must not be called")
		})
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{fmt.Errorf("%w: room full", createBooking.ErrOverbooking), http.StatusConflict, msgDatesNotAvailable},
		{createBooking.ErrRoomNotFound, http.StatusNotFound, msgRoomNotFound},
		{createBooking.ErrLocationMismatch, http.StatusBadRequest, msgLocationMismatch},
		{createBooking.ErrDateInPast, http.StatusBadRequest, msgDateInPast},
		{createBooking.ErrStayTooLong, http.StatusBadRequest, msgStayTooLong},
		{createBooking.ErrTooManyGuests, http.StatusBadRequest, msgTooManyGuests},
		{fmt.Errorf("%w: db down", createBooking.ErrInternal), http.StatusInternalServerError, "error interno del servidor"},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, &testutil.Logger{})
			rec := doRequest(h, validBody, true)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
		})
	}
}

func TestHandle_MissingStaff(t *testing.T) {
	uc := &fakeUseCase{}
	rec := doRequest(NewHandler(uc, &testutil.Logger{}), validBody, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.got)
}
