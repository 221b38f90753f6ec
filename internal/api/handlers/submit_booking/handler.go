package submit_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SEP-BookingService/internal/api/handlers"
	"github.com/m04kA/SEP-BookingService/internal/api/middleware"
	usecase "github.com/m04kA/SEP-BookingService/internal/usecase/submit_booking"
)

const (
	msgInvalidSelectionID = "некорректный ID черновика"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgMissingToken       = "отсутствует токен авторизации"
	msgNotFound           = "черновик не найден"
	msgForbidden          = "доступ запрещен"
	msgNotSubmittable     = "черновик не готов к отправке"
	msgUpstreamRejected   = "внешний сервис отклонил токен"
	msgUpstreamFailed     = "не удалось завершить бронирование, попробуйте еще раз"
)

type Handler struct {
	usecase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(usecase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/selections/{selectionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	selectionID, err := strconv.ParseInt(vars["selectionId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /selections/{id}/submit - Invalid selection ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSelectionID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /selections/{id}/submit - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	token, ok := middleware.GetToken(r.Context())
	if !ok {
		h.logger.Warn("POST /selections/{id}/submit - Missing token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	result, err := h.usecase.Execute(r.Context(), &usecase.Request{
		SelectionID: selectionID,
		UserID:      userID,
		Token:       token,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSelectionNotFound):
			h.logger.Warn("POST /selections/{id}/submit - Selection not found: selection_id=%d", selectionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, usecase.ErrAccessDenied):
			h.logger.Warn("POST /selections/{id}/submit - Access denied: selection_id=%d, user_id=%d", selectionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, usecase.ErrValidation):
			h.logger.Warn("POST /selections/{id}/submit - Selection not submittable: selection_id=%d, error=%v", selectionID, err)
			handlers.RespondBadRequest(w, msgNotSubmittable)

		case errors.Is(err, usecase.ErrUnauthorized):
			h.logger.Warn("POST /selections/{id}/submit - Upstream rejected token: user_id=%d", userID)
			handlers.RespondUnauthorized(w, msgUpstreamRejected)

		case errors.Is(err, usecase.ErrUpstream):
			h.logger.Error("POST /selections/{id}/submit - Upstream request failed: selection_id=%d, error=%v", selectionID, err)
			handlers.RespondBadGateway(w, msgUpstreamFailed)

		default:
			h.logger.Error("POST /selections/{id}/submit - Failed to submit booking: selection_id=%d, error=%v", selectionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /selections/{id}/submit - Booking submitted successfully: selection_id=%d, booking_id=%d, total=%d",
		selectionID, result.BookingID, result.Total)
	handlers.RespondJSON(w, http.StatusCreated, SubmitBookingResponse{
		BookingID: result.BookingID,
		Total:     result.Total,
	})
}
