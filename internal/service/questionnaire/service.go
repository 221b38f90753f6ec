package questionnaire

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SEP-BookingService/internal/domain"
	questionnaireRepo "github.com/m04kA/SEP-BookingService/internal/infra/storage/questionnaire"
	"github.com/m04kA/SEP-BookingService/internal/service/questionnaire/models"
)

// Service сервис для работы с анкетой предпочтений
// Переход next с охраной и завершением вынесен в use case advance_questionnaire
type Service struct {
	questionnaireRepo QuestionnaireRepository
	logger            Logger
}

// NewService создает новый экземпляр сервиса анкет
func NewService(questionnaireRepo QuestionnaireRepository, logger Logger) *Service {
	return &Service{
		questionnaireRepo: questionnaireRepo,
		logger:            logger,
	}
}

// Start создает анкету в начальном состоянии (первый вопрос, пустые ответы)
func (s *Service) Start(ctx context.Context, userID int64) (*models.QuestionnaireResponse, error) {
	s.logger.Info("Start: creating questionnaire for user=%d", userID)

	created, err := s.questionnaireRepo.Create(ctx, domain.NewQuestionnaire(userID))
	if err != nil {
		if errors.Is(err, questionnaireRepo.ErrQuestionnaireExists) {
			s.logger.Warn("Start: user=%d already has an active questionnaire", userID)
			return nil, ErrQuestionnaireExists
		}
		s.logger.Error("Start: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Start - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Start: successfully created questionnaire id=%d for user=%d", created.ID, userID)
	return models.FromDomainQuestionnaire(created), nil
}

// Get получает текущее состояние анкеты пользователя
func (s *Service) Get(ctx context.Context, userID int64) (*models.QuestionnaireResponse, error) {
	s.logger.Info("Get: fetching questionnaire for user=%d", userID)

	q, err := s.getByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainQuestionnaire(q), nil
}

// ToggleOption переключает вариант ответа текущего вопроса
// Правило исключительности "Nada en especial" применяется в домене
func (s *Service) ToggleOption(ctx context.Context, userID int64, option string) (*models.QuestionnaireResponse, error) {
	s.logger.Info("ToggleOption: user=%d, option=%q", userID, option)

	q, err := s.getByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := q.ToggleOption(q.CurrentCategory(), option); err != nil {
		s.logger.Warn("ToggleOption: unknown option %q for category=%s", option, q.CurrentCategory())
		return nil, ErrUnknownOption
	}

	updated, err := s.questionnaireRepo.Update(ctx, q)
	if err != nil {
		s.logger.Error("ToggleOption: repository error for questionnaire id=%d: %v", q.ID, err)
		return nil, fmt.Errorf("%w: ToggleOption - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainQuestionnaire(updated), nil
}

// Back переход prev: шаг к предыдущему вопросу
// Не охраняется и не очищает ответы; на первом вопросе — no-op
func (s *Service) Back(ctx context.Context, userID int64) (*models.QuestionnaireResponse, error) {
	s.logger.Info("Back: user=%d", userID)

	q, err := s.getByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if q.Index == 0 {
		return models.FromDomainQuestionnaire(q), nil
	}

	q.Back()

	updated, err := s.questionnaireRepo.Update(ctx, q)
	if err != nil {
		s.logger.Error("Back: repository error for questionnaire id=%d: %v", q.ID, err)
		return nil, fmt.Errorf("%w: Back - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainQuestionnaire(updated), nil
}

func (s *Service) getByUser(ctx context.Context, userID int64) (*domain.Questionnaire, error) {
	q, err := s.questionnaireRepo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, questionnaireRepo.ErrQuestionnaireNotFound) {
			s.logger.Warn("getByUser: no active questionnaire for user=%d", userID)
			return nil, ErrQuestionnaireNotFound
		}
		s.logger.Error("getByUser: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: getByUser - repository error: %v", ErrInternal, err)
	}
	return q, nil
}
