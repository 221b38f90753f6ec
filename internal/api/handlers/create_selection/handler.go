package create_selection

import (
	"errors"
	"net/http"

	"github.com/m04kA/SEP-BookingService/internal/api/handlers"
	"github.com/m04kA/SEP-BookingService/internal/api/middleware"
	"github.com/m04kA/SEP-BookingService/internal/service/selections"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgAlreadyExists = "у пользователя уже есть активный черновик"
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

// Handle POST /api/v1/selections
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /selections - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	selection, err := h.service.Create(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, selections.ErrSelectionExists):
			h.logger.Warn("POST /selections - Selection already exists: user_id=%d", userID)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /selections - Failed to create selection: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /selections - Selection created successfully: selection_id=%d, user_id=%d",
		selection.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, selection)
}
