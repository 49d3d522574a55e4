package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-HostelService/internal/api/handlers"
)

// StaffIDHeader заголовок с идентификатором сотрудника ресепшена
const StaffIDHeader = "X-Staff-ID"

const msgMissingStaffID = "falta el identificador del personal"

type contextKey string

const staffIDKey contextKey = "staff_id"

// Auth пропускает запрос только с заголовком X-Staff-ID и кладёт его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffID := strings.TrimSpace(r.Header.Get(StaffIDHeader))
		if staffID == "" {
			handlers.RespondUnauthorized(w, msgMissingStaffID)
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetStaffID достаёт идентификатор сотрудника, положенный Auth
func GetStaffID(ctx context.Context) (string, bool) {
	staffID, ok := ctx.Value(staffIDKey).(string)
	return staffID, ok && staffID != ""
}

// WithStaffID кладёт идентификатор сотрудника в контекст
func WithStaffID(ctx context.Context, staffID string) context.Context {
	return context.WithValue(ctx, staffIDKey, staffID)
}
