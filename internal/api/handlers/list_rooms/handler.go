package list_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HostelService/internal/api/handlers"
	"github.com/m04kA/SMC-HostelService/internal/service/rooms"
)

const msgInvalidLocation = "sede desconocida"

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms?location=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")

	result, err := h.service.List(r.Context(), location)
	if err != nil {
		if errors.Is(err, rooms.ErrInvalidInput) {
			h.logger.Warn("GET /rooms - Invalid location: %s", location)
			handlers.RespondBadRequest(w, msgInvalidLocation)
			return
		}
		h.logger.Error("GET /rooms - Failed to list rooms: location=%s, error=%v", location, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - Rooms retrieved successfully: location=%s, count=%d", location, len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, result)
}
