package toggle_discard

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SEP-BookingService/internal/api/handlers"
	"github.com/m04kA/SEP-BookingService/internal/api/middleware"
	"github.com/m04kA/SEP-BookingService/internal/service/selections"
)

const (
	msgInvalidSelectionID = "некорректный ID черновика"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "черновик не найден"
	msgForbidden          = "доступ запрещен"
	msgUnknownCategory    = "неизвестная категория"
)

type Handler struct {
	service SelectionService
	logger  Logger
}

func NewHandler(service SelectionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/selections/{selectionId}/discards
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	selectionID, err := strconv.ParseInt(vars["selectionId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /selections/{id}/discards - Invalid selection ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSelectionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /selections/{id}/discards - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ToggleDiscardRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selections/{id}/discards - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	selection, err := h.service.ToggleDiscard(r.Context(), selectionID, userID, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, selections.ErrSelectionNotFound):
			h.logger.Warn("POST /selections/{id}/discards - Selection not found: selection_id=%d", selectionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, selections.ErrAccessDenied):
			h.logger.Warn("POST /selections/{id}/discards - Access denied: selection_id=%d, user_id=%d", selectionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, selections.ErrInvalidInput):
			h.logger.Warn("POST /selections/{id}/discards - Unknown category: %s", req.Category)
			handlers.RespondBadRequest(w, msgUnknownCategory)

		default:
			h.logger.Error("POST /selections/{id}/discards - Failed to toggle discard: selection_id=%d, error=%v", selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /selections/{id}/discards - Discard toggled successfully: selection_id=%d, category=%s",
		selectionID, req.Category)
	handlers.RespondJSON(w, http.StatusOK, selection)
}
