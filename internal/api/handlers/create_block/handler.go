package create_block

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HostelService/internal/api/handlers"
	"github.com/m04kA/SMC-HostelService/internal/api/middleware"
	blockInventory "github.com/m04kA/SMC-HostelService/internal/usecase/block_inventory"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud no válido"
	msgInvalidFields      = "datos del bloqueo no válidos"
	msgInventoryOccupied  = "fechas no disponibles"
	msgRoomNotFound       = "habitación no encontrada"
	msgLocationMismatch   = "la habitación pertenece a otra sede"
	msgDateInPast         = "la fecha de inicio ya pasó"
	msgMissingStaffID     = "falta el identificador del personal"
)

type Handler struct {
	useCase BlockInventoryUseCase
	logger  Logger
}

func NewHandler(useCase BlockInventoryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, ok := middleware.GetStaffID(r.Context())
	if !ok {
		h.logger.Warn("POST /blocks - Missing staff ID")
		handlers.RespondUnauthorized(w, msgMissingStaffID)
		return
	}

	var req CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /blocks - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(staffID)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, blockInventory.ErrOverbooking):
			h.logger.Warn("POST /blocks - Inventory occupied: room_id=%s, start=%s, end=%s",
				req.RoomID, req.StartDate, req.EndDate)
			handlers.RespondConflict(w, msgInventoryOccupied)

		case errors.Is(err, blockInventory.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, blockInventory.ErrLocationMismatch):
			handlers.RespondBadRequest(w, msgLocationMismatch)

		case errors.Is(err, blockInventory.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, blockInventory.ErrInvalidInput):
			h.logger.Warn("POST /blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		default:
			h.logger.Error("POST /blocks - Failed to create block: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /blocks - Block created: block_id=%s, room_id=%s, staff_id=%s", result.ID, result.RoomID, staffID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
