package toggle_answer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SEP-BookingService/internal/api/handlers"
	"github.com/m04kA/SEP-BookingService/internal/api/middleware"
	"github.com/m04kA/SEP-BookingService/internal/service/questionnaire"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "анкета не найдена"
	msgUnknownOption      = "неизвестный вариант ответа"
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

// Handle PUT /api/v1/questionnaire/answers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /questionnaire/answers - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ToggleAnswerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /questionnaire/answers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ToggleOption(r.Context(), userID, req.Option)
	if err != nil {
		switch {
		case errors.Is(err, questionnaire.ErrQuestionnaireNotFound):
			h.logger.Warn("PUT /questionnaire/answers - Questionnaire not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, questionnaire.ErrUnknownOption):
			h.logger.Warn("PUT /questionnaire/answers - Unknown option: user_id=%d, option=%q", userID, req.Option)
			handlers.RespondBadRequest(w, msgUnknownOption)

		default:
			h.logger.Error("PUT /questionnaire/answers - Failed to toggle option: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /questionnaire/answers - Option toggled successfully: user_id=%d, option=%q",
		userID, req.Option)
	handlers.RespondJSON(w, http.StatusOK, result)
}
