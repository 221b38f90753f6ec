package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SEP-BookingService/internal/domain"
	apiClient "github.com/m04kA/SEP-BookingService/internal/integrations/experienceapi"
	"github.com/m04kA/SEP-BookingService/pkg/ptr"
)

// UseCase use case отправки черновика бронирования во внешний Experiences API
// Вызов внешнего API одноразовый: без повторных попыток; при любой ошибке
// черновик остаётся без изменений и пользователь может повторить отправку
type UseCase struct {
	selectionRepo SelectionRepository
	receiptRepo   ReceiptRepository
	apiClient     ExperienceAPIClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	selectionRepo SelectionRepository,
	receiptRepo ReceiptRepository,
	apiClient ExperienceAPIClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		selectionRepo: selectionRepo,
		receiptRepo:   receiptRepo,
		apiClient:     apiClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case отправки бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: selection=%d, user=%d", req.SelectionID, req.UserID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: request validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем черновик и проверяем владельца
	sel, err := uc.selectionRepo.GetByID(ctx, req.SelectionID)
	if err != nil {
		uc.logger.Warn("SubmitBooking: selection id=%d not found: %v", req.SelectionID, err)
		return nil, ErrSelectionNotFound
	}
	if sel.UserID != req.UserID {
		uc.logger.Warn("SubmitBooking: access denied for user=%d to selection id=%d", req.UserID, req.SelectionID)
		return nil, ErrAccessDenied
	}

	// 3. Проверяем готовность черновика к отправке
	now := uc.timeProvider.Now()
	if err := validateSelection(sel, now); err != nil {
		uc.logger.Warn("SubmitBooking: selection id=%d not submittable: %v", req.SelectionID, err)
		return nil, err
	}

	// 4. Считаем итоговую стоимость
	quote := domain.ComputeQuote(sel)
	uc.logger.Info("SubmitBooking: selection id=%d, total=%d (base=%d, surcharge=%d)",
		req.SelectionID, quote.Total, quote.BaseTotal, quote.Surcharge)

	// 5. Отправляем бронирование во внешний API
	categories := make([]string, len(sel.DiscardedCategories))
	for i, c := range sel.DiscardedCategories {
		categories[i] = string(c)
	}

	reserva, err := uc.apiClient.CreateReserva(ctx, req.Token, &apiClient.CreateReservaRequest{
		Participants:     sel.ParticipantCount,
		Price:            quote.Total,
		User:             sel.UserID,
		ExperienceDate:   sel.ExperienceDate.Format(domain.DateFormat),
		Location:         sel.City,
		TimePreference:   string(sel.TimePreference),
		Categories:       categories,
		NotasAdicionales: ptr.Deref(sel.Notes, ""),
	})
	if err != nil {
		if errors.Is(err, apiClient.ErrUnauthorized) {
			uc.logger.Warn("SubmitBooking: upstream rejected token for user=%d", req.UserID)
			return nil, ErrUnauthorized
		}
		uc.logger.Error("SubmitBooking: upstream call failed for selection id=%d: %v", req.SelectionID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	// 6. Фиксируем запись и удаляем черновик в одной транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		receipt := &domain.BookingReceipt{
			UserID:           sel.UserID,
			UpstreamID:       reserva.ID,
			City:             sel.City,
			TimePreference:   sel.TimePreference,
			ExperienceDate:   *sel.ExperienceDate,
			ParticipantCount: sel.ParticipantCount,
			Total:            quote.Total,
		}

		if _, err := uc.receiptRepo.Create(txCtx, receipt); err != nil {
			return fmt.Errorf("%w: failed to create receipt: %v", ErrInternal, err)
		}

		if err := uc.selectionRepo.Delete(txCtx, sel.ID); err != nil {
			return fmt.Errorf("%w: failed to delete selection: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		// Бронирование во внешнем API уже создано; локальную очистку
		// не повторяем, только логируем — пользователь получил booking id
		uc.logger.Error("SubmitBooking: local cleanup failed for selection id=%d, upstream id=%d: %v",
			req.SelectionID, reserva.ID, err)
	}

	uc.logger.Info("SubmitBooking: successfully submitted selection id=%d, upstream id=%d", req.SelectionID, reserva.ID)

	return &Response{
		BookingID: reserva.ID,
		Total:     quote.Total,
	}, nil
}
