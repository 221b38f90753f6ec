package advance_questionnaire

import (
	"context"

	"github.com/m04kA/SEP-BookingService/internal/usecase/advance_questionnaire"
)

type AdvanceQuestionnaireUseCase interface {
	Execute(ctx context.Context, req *advance_questionnaire.Request) (*advance_questionnaire.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
