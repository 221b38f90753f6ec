package get_questionnaire

import (
	"errors"
	"net/http"

	"github.com/m04kA/SEP-BookingService/internal/api/handlers"
	"github.com/m04kA/SEP-BookingService/internal/api/middleware"
	"github.com/m04kA/SEP-BookingService/internal/service/questionnaire"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "анкета не найдена"
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

// Handle GET /api/v1/questionnaire
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /questionnaire - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Get(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, questionnaire.ErrQuestionnaireNotFound):
			h.logger.Warn("GET /questionnaire - Questionnaire not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /questionnaire - Failed to get questionnaire: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /questionnaire - Questionnaire retrieved successfully: user_id=%d, index=%d",
		userID, result.Index)
	handlers.RespondJSON(w, http.StatusOK, result)
}
