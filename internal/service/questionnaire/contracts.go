package questionnaire

import (
	"context"

	"github.com/m04kA/SEP-BookingService/internal/domain"
)

// QuestionnaireRepository интерфейс репозитория анкет
type QuestionnaireRepository interface {
	Create(ctx context.Context, q *domain.Questionnaire) (*domain.Questionnaire, error)
	GetByUser(ctx context.Context, userID int64) (*domain.Questionnaire, error)
	Update(ctx context.Context, q *domain.Questionnaire) (*domain.Questionnaire, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
