package submit_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SEP-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SelectionID <= 0 {
		return fmt.Errorf("%w: selectionID must be positive", ErrInternal)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInternal)
	}
	if req.Token == "" {
		return ErrUnauthorized
	}
	return nil
}

// validateSelection проверяет готовность черновика к отправке
// Первая проблема валидации становится текстом ошибки
func validateSelection(sel *domain.Selection, now time.Time) error {
	fieldErrors := sel.Validate(now)
	if len(fieldErrors) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s: %s", ErrValidation, fieldErrors[0].Field, fieldErrors[0].Message)
}
