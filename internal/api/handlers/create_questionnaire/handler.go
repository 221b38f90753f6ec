package create_questionnaire

import (
	"errors"
	"net/http"

	"github.com/m04kA/SEP-BookingService/internal/api/handlers"
	"github.com/m04kA/SEP-BookingService/internal/api/middleware"
	"github.com/m04kA/SEP-BookingService/internal/service/questionnaire"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgAlreadyExists = "у пользователя уже есть активная анкета"
)

type Handler struct {
	service QuestionnaireService
	logger  Logger
}

func NewHandler(service QuestionnaireService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/questionnaire
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /questionnaire - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Start(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, questionnaire.ErrQuestionnaireExists):
			h.logger.Warn("POST /questionnaire - Questionnaire already exists: user_id=%d", userID)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /questionnaire - Failed to start questionnaire: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /questionnaire - Questionnaire started successfully: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
