package advance_questionnaire

import (
	"errors"
	"net/http"

	"github.com/m04kA/SEP-BookingService/internal/api/handlers"
	"github.com/m04kA/SEP-BookingService/internal/api/middleware"
	usecase "github.com/m04kA/SEP-BookingService/internal/usecase/advance_questionnaire"
)

const (
	msgMissingUserID    = "отсутствует ID пользователя"
	msgMissingToken     = "отсутствует токен авторизации"
	msgNotFound         = "анкета не найдена"
	msgEmptySelection   = "выберите хотя бы один вариант ответа"
	msgIncomplete       = "анкета заполнена не полностью"
	msgUpstreamRejected = "внешний сервис отклонил токен"
	msgUpstreamFailed   = "не удалось отправить предпочтения, попробуйте еще раз"
)

type Handler struct {
	usecase AdvanceQuestionnaireUseCase
	logger  Logger
}

func NewHandler(usecase AdvanceQuestionnaireUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/questionnaire/next
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /questionnaire/next - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("POST /questionnaire/next - Missing token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	result, err := h.usecase.Execute(r.Context(), &usecase.Request{
		UserID: userID,
		Token:  token,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrQuestionnaireNotFound):
			h.logger.Warn("POST /questionnaire/next - Questionnaire not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, usecase.ErrEmptySelection):
			h.logger.Warn("POST /questionnaire/next - Empty selection: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgEmptySelection)

		case errors.Is(err, usecase.ErrIncomplete):
			h.logger.Warn("POST /questionnaire/next - Questionnaire incomplete: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgIncomplete)

		case errors.Is(err, usecase.ErrUnauthorized):
			h.logger.Warn("POST /questionnaire/next - Upstream rejected token: user_id=%d", userID)
			handlers.RespondUnauthorized(w, msgUpstreamRejected)

		case errors.Is(err, usecase.ErrUpstream):
			h.logger.Error("POST /questionnaire/next - Upstream request failed: user_id=%d, error=%v", userID, err)
			handlers.RespondBadGateway(w, msgUpstreamFailed)

		default:
			h.logger.Error("POST /questionnaire/next - Failed to advance questionnaire: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /questionnaire/next - Advanced successfully: user_id=%d, index=%d, submitted=%t",
		userID, result.Index, result.Submitted)
	handlers.RespondJSON(w, http.StatusOK, result)
}
