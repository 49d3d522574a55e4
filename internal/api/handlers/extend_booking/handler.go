package extend_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HostelService/internal/api/handlers"
	"github.com/m04kA/SMC-HostelService/internal/api/middleware"
	extendBooking "github.com/m04kA/SMC-HostelService/internal/usecase/extend_booking"
)

const (
	msgInvalidBookingID   = "identificador de reserva no válido"
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidCheckOut    = "la nueva fecha de salida debe ser posterior a la actual"
	msgNotFound           = "reserva no encontrada"
	msgCannotExtend       = "la reserva no se puede extender"
	msgStayTooLong        = "la estancia es demasiado larga"
	msgDatesNotAvailable  = "fechas no disponibles"
	msgMissingStaffID     = "falta el identificador del personal"
)

type Handler struct {
	useCase ExtendBookingUseCase
	logger  Logger
}

func NewHandler(useCase ExtendBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/extend
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/extend - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]
	if _, err := uuid.Parse(bookingID); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/extend - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ExtendBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/extend - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/extend - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCheckOut)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, staffID)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCheckOut)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, extendBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/extend - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, extendBooking.ErrOverbooking):
			h.logger.Warn("PATCH /bookings/{id}/extend - Dates not available: booking_id=%s, check_out=%s",
				bookingID, req.CheckOut)
			handlers.RespondConflict(w, msgDatesNotAvailable)

		case errors.Is(err, extendBooking.ErrCannotExtend):
			handlers.RespondConflict(w, msgCannotExtend)

		case errors.Is(err, extendBooking.ErrInvalidCheckOut):
			handlers.RespondBadRequest(w, msgInvalidCheckOut)

		case errors.Is(err, extendBooking.ErrStayTooLong):
			handlers.RespondBadRequest(w, msgStayTooLong)

		case errors.Is(err, extendBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/extend - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCheckOut)

		default:
			h.logger.Error("PATCH /bookings/{id}/extend - Failed to extend booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/extend - Booking extended: booking_id=%s, %s -> %s, staff_id=%s",
		bookingID, result.PreviousCheckOut.Format("2006-01-02"), req.CheckOut, staffID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
