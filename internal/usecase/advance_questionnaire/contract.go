package advance_questionnaire

import (
	"context"

	"github.com/m04kA/SEP-BookingService/internal/domain"
	"github.com/m04kA/SEP-BookingService/internal/integrations/experienceapi"
)

// QuestionnaireRepository интерфейс репозитория анкет
type QuestionnaireRepository interface {
	GetByUser(ctx context.Context, userID int64) (*domain.Questionnaire, error)
	Update(ctx context.Context, q *domain.Questionnaire) (*domain.Questionnaire, error)
	Delete(ctx context.Context, id int64) error
}

// ExperienceAPIClient интерфейс клиента внешнего Experiences API
type ExperienceAPIClient interface {
	UpdatePreferences(ctx context.Context, token string, req *experienceapi.PreferencesRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
