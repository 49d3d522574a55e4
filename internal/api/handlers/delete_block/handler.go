package delete_block

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HostelService/internal/api/handlers"
	"github.com/m04kA/SMC-HostelService/internal/api/middleware"
	"github.com/m04kA/SMC-HostelService/internal/service/blocks"
)

const (
	msgInvalidBlockID = "identificador de bloqueo no válido"
	msgNotFound       = "bloqueo no encontrado"
	msgMissingStaffID = "falta el identificador del personal"
)

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

// Handle DELETE /api/v1/blocks/{blockId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /blocks/{id} - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	blockID := mux.Vars(r)["blockId"]
	if _, err := uuid.Parse(blockID); err != nil {
		h.logger.Warn("DELETE /blocks/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.Unblock(r.Context(), blockID, staffID); err != nil {
		if errors.Is(err, blocks.ErrBlockNotFound) {
			h.logger.Warn("DELETE /blocks/{id} - Block not found: block_id=%s", blockID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /blocks/{id} - Failed to delete block: block_id=%s, error=%v", blockID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /blocks/{id} - Block removed: block_id=%s, staff_id=%s", blockID, staffID)
	w.WriteHeader(http.StatusNoContent)
}
