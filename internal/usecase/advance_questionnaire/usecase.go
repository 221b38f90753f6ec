package advance_questionnaire

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SEP-BookingService/internal/domain"
	apiClient "github.com/m04kA/SEP-BookingService/internal/integrations/experienceapi"
)

// UseCase use case перехода next по анкете предпочтений
// Обычный переход двигает индекс вопроса; переход с последнего вопроса
// отправляет предпочтения во внешний Experiences API и завершает анкету
// только после его подтверждения
type UseCase struct {
	questionnaireRepo QuestionnaireRepository
	apiClient         ExperienceAPIClient
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	questionnaireRepo QuestionnaireRepository,
	apiClient ExperienceAPIClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		questionnaireRepo: questionnaireRepo,
		apiClient:         apiClient,
		logger:            logger,
	}
}

// Execute выполняет переход next
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdvanceQuestionnaire: user=%d", req.UserID)

	// 1. Получаем анкету
	q, err := uc.questionnaireRepo.GetByUser(ctx, req.UserID)
	if err != nil {
		uc.logger.Warn("AdvanceQuestionnaire: no active questionnaire for user=%d", req.UserID)
		return nil, ErrQuestionnaireNotFound
	}

	// 2. Охрана перехода: в текущей категории должен быть выбран хотя бы один вариант
	if !q.CanAdvance() {
		uc.logger.Warn("AdvanceQuestionnaire: empty selection for category=%s, user=%d",
			q.CurrentCategory(), req.UserID)
		return nil, ErrEmptySelection
	}

	// 3. Обычный переход: двигаем индекс и сохраняем
	if !q.IsLast() {
		if err := q.Advance(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}

		updated, err := uc.questionnaireRepo.Update(ctx, q)
		if err != nil {
			uc.logger.Error("AdvanceQuestionnaire: failed to save questionnaire id=%d: %v", q.ID, err)
			return nil, fmt.Errorf("%w: failed to save questionnaire: %v", ErrInternal, err)
		}

		uc.logger.Info("AdvanceQuestionnaire: user=%d advanced to index=%d", req.UserID, updated.Index)
		return &Response{Index: updated.Index}, nil
	}

	// 4. Переход с последнего вопроса: отправляем предпочтения
	if !q.IsComplete() {
		uc.logger.Warn("AdvanceQuestionnaire: questionnaire id=%d has empty categories", q.ID)
		return nil, ErrIncomplete
	}

	if err := uc.apiClient.UpdatePreferences(ctx, req.Token, buildPreferences(q)); err != nil {
		if errors.Is(err, apiClient.ErrUnauthorized) {
			uc.logger.Warn("AdvanceQuestionnaire: upstream rejected token for user=%d", req.UserID)
			return nil, ErrUnauthorized
		}
		// Анкета не меняется: пользователь остаётся на последнем вопросе
		// и может повторить переход
		uc.logger.Error("AdvanceQuestionnaire: upstream call failed for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	// 5. Терминальное состояние: анкета удаляется
	if err := uc.questionnaireRepo.Delete(ctx, q.ID); err != nil {
		// Предпочтения уже приняты внешним API; только логируем
		uc.logger.Error("AdvanceQuestionnaire: failed to delete questionnaire id=%d: %v", q.ID, err)
	}

	uc.logger.Info("AdvanceQuestionnaire: user=%d submitted preferences", req.UserID)
	return &Response{Index: q.Index, Submitted: true}, nil
}

// buildPreferences собирает тело запроса предпочтений из ответов анкеты
func buildPreferences(q *domain.Questionnaire) *apiClient.PreferencesRequest {
	return &apiClient.PreferencesRequest{
		Music:      q.Selected(domain.CategoryMusic),
		Culture:    q.Selected(domain.CategoryCulture),
		Sports:     q.Selected(domain.CategorySports),
		Gastronomy: q.Selected(domain.CategoryGastronomy),
		Nightlife:  q.Selected(domain.CategoryNightlife),
		Adventure:  q.Selected(domain.CategoryAdventure),
	}
}
