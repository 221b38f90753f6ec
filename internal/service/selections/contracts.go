package selections

import (
	"context"
	"time"

	"github.com/m04kA/SEP-BookingService/internal/domain"
)

// SelectionRepository интерфейс репозитория черновиков
type SelectionRepository interface {
	Create(ctx context.Context, sel *domain.Selection) (*domain.Selection, error)
	GetByID(ctx context.Context, id int64) (*domain.Selection, error)
	Update(ctx context.Context, sel *domain.Selection) (*domain.Selection, error)
	Delete(ctx context.Context, id int64) error
}

// ReceiptRepository интерфейс репозитория записей об отправленных бронированиях
type ReceiptRepository interface {
	GetByUser(ctx context.Context, userID int64) ([]*domain.BookingReceipt, error)
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
