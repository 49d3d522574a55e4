package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HostelService/internal/api/handlers"
	"github.com/m04kA/SMC-HostelService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-HostelService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidFields      = "datos de la reserva no válidos"
	msgDatesNotAvailable  = "fechas no disponibles"
	msgRoomNotFound       = "habitación no encontrada"
	msgLocationMismatch   = "la habitación pertenece a otra sede"
	msgDateInPast         = "la fecha de entrada ya pasó"
	msgStayTooLong        = "la estancia es demasiado larga"
	msgTooManyGuests      = "demasiados huéspedes para la habitación"
	msgMissingStaffID     = "falta el identificador del personal"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(staffID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrOverbooking):
			h.logger.Warn("POST /bookings - Dates not available: room_id=%s, check_in=%s, check_out=%s",
				req.RoomID, req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgDatesNotAvailable)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrLocationMismatch):
			h.logger.Warn("POST /bookings - Location mismatch: room_id=%s, location=%s", req.RoomID, req.Location)
			handlers.RespondBadRequest(w, msgLocationMismatch)

		case errors.Is(err, createBooking.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrStayTooLong):
			handlers.RespondBadRequest(w, msgStayTooLong)

		case errors.Is(err, createBooking.ErrTooManyGuests):
			h.logger.Warn("POST /bookings - Too many guests: room_id=%s, guests=%d", req.RoomID, useCaseReq.Guests)
			handlers.RespondBadRequest(w, msgTooManyGuests)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%s, staff_id=%s, error=%v",
				req.RoomID, staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, room_id=%s, staff_id=%s",
		result.ID, result.RoomID, staffID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
