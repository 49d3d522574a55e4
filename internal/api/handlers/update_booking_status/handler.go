package update_booking_status

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HostelService/internal/api/handlers"
	"github.com/m04kA/SMC-HostelService/internal/api/middleware"
	updateStatus "github.com/m04kA/SMC-HostelService/internal/usecase/update_booking_status"
)

const (
	msgInvalidBookingID   = "identificador de reserva no válido"
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidStatus      = "estado no válido"
	msgNotFound           = "reserva no encontrada"
	msgInvalidTransition  = "cambio de estado no permitido"
	msgPaymentNotSettled  = "el pago no está liquidado"
	msgIdentityNotChecked = "la identidad del huésped no está verificada"
	msgCheckInNotReached  = "aún no es la fecha de entrada"
	msgDatesNotAvailable  = "fechas no disponibles"
	msgMissingStaffID     = "falta el identificador del personal"
)

type Handler struct {
	useCase UpdateStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/status - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]
	if _, err := uuid.Parse(bookingID); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID, staffID))
	if err != nil {
		switch {
		case errors.Is(err, updateStatus.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateStatus.ErrInvalidTransition):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid transition: booking_id=%s, status=%s", bookingID, req.Status)
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, updateStatus.ErrOverbooking):
			h.logger.Warn("PATCH /bookings/{id}/status - Dates not available: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgDatesNotAvailable)

		case errors.Is(err, updateStatus.ErrPaymentNotSettled):
			handlers.RespondBadRequest(w, msgPaymentNotSettled)

		case errors.Is(err, updateStatus.ErrIdentityNotVerified):
			handlers.RespondBadRequest(w, msgIdentityNotChecked)

		case errors.Is(err, updateStatus.ErrCheckInNotReached):
			handlers.RespondBadRequest(w, msgCheckInNotReached)

		case errors.Is(err, updateStatus.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to update status: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Status updated: booking_id=%s, %s -> %s, staff_id=%s",
		bookingID, result.PreviousStatus, result.Status, staffID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
