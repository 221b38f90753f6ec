package get_quote

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
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "черновик не найден"
	msgForbidden          = "доступ запрещен"
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

// Handle GET /api/v1/selections/{selectionId}/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	selectionID, err := strconv.ParseInt(vars["selectionId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /selections/{id}/quote - Invalid selection ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSelectionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /selections/{id}/quote - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	quote, err := h.service.Quote(r.Context(), selectionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, selections.ErrSelectionNotFound):
			h.logger.Warn("GET /selections/{id}/quote - Selection not found: selection_id=%d", selectionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, selections.ErrAccessDenied):
			h.logger.Warn("GET /selections/{id}/quote - Access denied: selection_id=%d, user_id=%d", selectionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /selections/{id}/quote - Failed to compute quote: selection_id=%d, error=%v", selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /selections/{id}/quote - Quote computed successfully: selection_id=%d, total=%d",
		selectionID, quote.Total)
	handlers.RespondJSON(w, http.StatusOK, quote)
}
