package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantStaff  string
	}{
		{"present", "recepcion-1", http.StatusOK, "recepcion-1"},
		{"trimmed", "  recepcion-2 ", http.StatusOK, "recepcion-2"},
		{"missing", "", http.StatusUnauthorized, ""},
		{"blank", "   ", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotStaff string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotStaff, _ = GetStaffID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
			if tt.header != "" {
				req.Header.Set(StaffIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			Auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStaff, gotStaff)
		})
	}
}

func TestGetStaffID_Empty(t *testing.T) {
	_, ok := GetStaffID(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	assert.False(t, ok)
}
