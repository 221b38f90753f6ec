package rewind_questionnaire

import (
	"context"

	"github.com/m04kA/SEP-BookingService/internal/service/questionnaire/models"
)

type QuestionnaireService interface {
	Back(ctx context.Context, userID int64) (*models.QuestionnaireResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
