package get_selection

import (
	"context"

	"github.com/m04kA/SEP-BookingService/internal/service/selections/models"
)

type SelectionService interface {
	GetByID(ctx context.Context, id int64, userID int64) (*models.SelectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
