package submit_booking

import (
	"context"
	"time"

	"github.com/m04kA/SEP-BookingService/internal/domain"
	"github.com/m04kA/SEP-BookingService/internal/integrations/experienceapi"
)

// SelectionRepository интерфейс репозитория черновиков
type SelectionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Selection, error)
	Delete(ctx context.Context, id int64) error
}

// ReceiptRepository интерфейс репозитория записей об отправленных бронированиях
type ReceiptRepository interface {
	Create(ctx context.Context, rec *domain.BookingReceipt) (*domain.BookingReceipt, error)
}

// ExperienceAPIClient интерфейс клиента внешнего Experiences API
type ExperienceAPIClient interface {
	CreateReserva(ctx context.Context, token string, req *experienceapi.CreateReservaRequest) (*experienceapi.CreateReservaResponse, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
