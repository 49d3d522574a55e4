package list_blocks

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HostelService/internal/api/handlers"
	"github.com/m04kA/SMC-HostelService/internal/service/blocks"
	"github.com/m04kA/SMC-HostelService/internal/service/blocks/models"
)

const msgInvalidQuery = "parámetros de filtro no válidos"

type Handler struct {
	service BlockService
	logger  Logger
}

func NewHandler(service BlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/blocks
// Query params: location, roomId, from, to (YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &models.ListBlocksRequest{
		Location: q.Get("location"),
		RoomID:   q.Get("roomId"),
		From:     q.Get("from"),
		To:       q.Get("to"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, blocks.ErrInvalidInput) {
			h.logger.Warn("GET /blocks - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)
			return
		}
		h.logger.Error("GET /blocks - Failed to list blocks: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /blocks - Blocks retrieved successfully: count=%d", len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
