package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HostelService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-HostelService/internal/usecase/get_availability"
)

const (
	msgInvalidQuery = "parámetros de búsqueda no válidos, se espera location, checkIn y checkOut (YYYY-MM-DD)"
	msgInvalidDates = "rango de fechas no válido"
	msgDateInPast   = "la fecha de entrada ya pasó"
	msgRoomNotFound = "habitación no encontrada"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: location, checkIn, checkOut (required), roomId, guests, unitId, excludeBookingId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := FromQuery(r.URL.Query())
	if err := handlers.Validate(&query); err != nil {
		h.logger.Warn("GET /availability - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	useCaseReq, err := query.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("GET /availability - Failed to parse query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /availability - Room not found: room_id=%s", query.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getAvailability.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDates)

		default:
			h.logger.Error("GET /availability - Failed to get availability: location=%s, room_id=%s, error=%v",
				query.Location, query.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - location=%s, check_in=%s, check_out=%s, rooms=%d",
		query.Location, query.CheckIn, query.CheckOut, len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
