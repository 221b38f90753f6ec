package selections

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SEP-BookingService/internal/domain"
	selectionRepo "github.com/m04kA/SEP-BookingService/internal/infra/storage/selection"
	"github.com/m04kA/SEP-BookingService/internal/service/selections/models"
)

// Service сервис для работы с черновиками бронирования
type Service struct {
	selectionRepo SelectionRepository
	receiptRepo   ReceiptRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(
	selectionRepo SelectionRepository,
	receiptRepo ReceiptRepository,
	logger Logger,
) *Service {
	return &Service{
		selectionRepo: selectionRepo,
		receiptRepo:   receiptRepo,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Create создает свежий черновик для пользователя
// У пользователя может быть только один активный черновик
func (s *Service) Create(ctx context.Context, userID int64) (*models.SelectionResponse, error) {
	s.logger.Info("Create: creating selection for user=%d", userID)

	created, err := s.selectionRepo.Create(ctx, domain.NewSelection(userID))
	if err != nil {
		if errors.Is(err, selectionRepo.ErrSelectionExists) {
			s.logger.Warn("Create: user=%d already has an active selection", userID)
			return nil, ErrSelectionExists
		}
		s.logger.Error("Create: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created selection id=%d for user=%d", created.ID, userID)
	return models.FromDomainSelection(created, s.timeProvider.Now()), nil
}

// GetByID получает черновик по ID
// Черновик доступен только его владельцу
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.SelectionResponse, error) {
	s.logger.Info("GetByID: fetching selection id=%d for user=%d", id, userID)

	sel, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainSelection(sel, s.timeProvider.Now()), nil
}

// Update применяет частичное обновление черновика
// Значения закрытых наборов (город, время суток, базовая цена) проверяются сразу;
// остальные значения сохраняются как есть, а проблемы попадают в ValidationErrors
func (s *Service) Update(ctx context.Context, id int64, userID int64, req *models.UpdateSelectionRequest) (*models.SelectionResponse, error) {
	s.logger.Info("Update: updating selection id=%d for user=%d", id, userID)

	sel, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if err := applyUpdate(sel, req); err != nil {
		s.logger.Warn("Update: invalid input for selection id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.selectionRepo.Update(ctx, sel)
	if err != nil {
		if errors.Is(err, selectionRepo.ErrSelectionNotFound) {
			return nil, ErrSelectionNotFound
		}
		s.logger.Error("Update: repository error for selection id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated selection id=%d", id)
	return models.FromDomainSelection(updated, s.timeProvider.Now()), nil
}

// ToggleDiscard переключает исключение категории
// При заполненном наборе (3 категории) добавление молча игнорируется:
// клиент получает 200 с неизменённым списком исключений
func (s *Service) ToggleDiscard(ctx context.Context, id int64, userID int64, categoryID string) (*models.SelectionResponse, error) {
	s.logger.Info("ToggleDiscard: selection id=%d, user=%d, category=%s", id, userID, categoryID)

	category, err := domain.ParseCategory(categoryID)
	if err != nil {
		s.logger.Warn("ToggleDiscard: unknown category=%s", categoryID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	sel, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if changed := sel.ToggleDiscard(category); !changed {
		s.logger.Info("ToggleDiscard: discard cap reached for selection id=%d, category=%s ignored", id, categoryID)
		return models.FromDomainSelection(sel, s.timeProvider.Now()), nil
	}

	updated, err := s.selectionRepo.Update(ctx, sel)
	if err != nil {
		s.logger.Error("ToggleDiscard: repository error for selection id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: ToggleDiscard - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ToggleDiscard: selection id=%d now discards %d categories", id, len(updated.DiscardedCategories))
	return models.FromDomainSelection(updated, s.timeProvider.Now()), nil
}

// Quote считает разбивку стоимости черновика
func (s *Service) Quote(ctx context.Context, id int64, userID int64) (*models.QuoteResponse, error) {
	s.logger.Info("Quote: selection id=%d, user=%d", id, userID)

	sel, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainQuote(domain.ComputeQuote(sel)), nil
}

// Delete удаляет черновик по запросу пользователя
func (s *Service) Delete(ctx context.Context, id int64, userID int64) error {
	s.logger.Info("Delete: selection id=%d, user=%d", id, userID)

	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}

	if err := s.selectionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, selectionRepo.ErrSelectionNotFound) {
			return ErrSelectionNotFound
		}
		s.logger.Error("Delete: repository error for selection id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted selection id=%d", id)
	return nil
}

// History получает записи пользователя об отправленных бронированиях
func (s *Service) History(ctx context.Context, userID int64) (*models.ReceiptListResponse, error) {
	s.logger.Info("History: fetching receipts for user=%d", userID)

	receipts, err := s.receiptRepo.GetByUser(ctx, userID)
	if err != nil {
		s.logger.Error("History: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: History - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("History: successfully fetched %d receipts for user=%d", len(receipts), userID)
	return models.FromDomainReceipts(receipts), nil
}

// getOwned получает черновик и проверяет, что он принадлежит пользователю
func (s *Service) getOwned(ctx context.Context, id int64, userID int64) (*domain.Selection, error) {
	sel, err := s.selectionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, selectionRepo.ErrSelectionNotFound) {
			s.logger.Warn("getOwned: selection id=%d not found", id)
			return nil, ErrSelectionNotFound
		}
		s.logger.Error("getOwned: repository error for selection id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: getOwned - repository error: %v", ErrInternal, err)
	}

	if sel.UserID != userID {
		s.logger.Warn("getOwned: access denied for user=%d to selection id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return sel, nil
}

// applyUpdate применяет частичное обновление к доменному черновику
func applyUpdate(sel *domain.Selection, req *models.UpdateSelectionRequest) error {
	if req.City != nil {
		if !domain.IsSupportedCity(*req.City) {
			return fmt.Errorf("%w: unsupported city: %s", ErrInvalidInput, *req.City)
		}
		sel.City = *req.City
	}

	if req.TimePreference != nil {
		pref, err := domain.ParseTimePreference(*req.TimePreference)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		sel.TimePreference = pref
	}

	if req.BasePrice != nil {
		if !domain.IsValidBasePrice(*req.BasePrice) {
			return fmt.Errorf("%w: base price must be one of 20, 40, 60", ErrInvalidInput)
		}
		sel.BasePrice = *req.BasePrice
	}

	// Количество участников принимается любым; значения < 1 блокируют
	// только отправку (см. Selection.Validate)
	if req.ParticipantCount != nil {
		sel.ParticipantCount = *req.ParticipantCount
	}

	if req.ExperienceDate != nil {
		date, err := time.Parse(domain.DateFormat, *req.ExperienceDate)
		if err != nil {
			return fmt.Errorf("%w: invalid experience date format, expected YYYY-MM-DD", ErrInvalidInput)
		}
		sel.ExperienceDate = &date
	}

	if req.Notes != nil {
		sel.Notes = req.Notes
	}

	return nil
}
