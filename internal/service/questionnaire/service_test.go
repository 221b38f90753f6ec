package questionnaire

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SEP-BookingService/internal/domain"
	questionnaireRepo "github.com/m04kA/SEP-BookingService/internal/infra/storage/questionnaire"
)

type fakeQuestionnaireRepo struct {
	questionnaire *domain.Questionnaire
	createErr     error
	getErr        error
	updateErr     error
}

func (f *fakeQuestionnaireRepo) Create(_ context.Context, q *domain.Questionnaire) (*domain.Questionnaire, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	q.ID = 5
	f.questionnaire = q
	return q, nil
}

func (f *fakeQuestionnaireRepo) GetByUser(_ context.Context, userID int64) (*domain.Questionnaire, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.questionnaire, nil
}

func (f *fakeQuestionnaireRepo) Update(_ context.Context, q *domain.Questionnaire) (*domain.Questionnaire, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.questionnaire = q
	return q, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestStart(t *testing.T) {
	t.Run("fresh questionnaire on the first question", func(t *testing.T) {
		svc := NewService(&fakeQuestionnaireRepo{}, nopLogger{})

		resp, err := svc.Start(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, 0, resp.Index)
		assert.Equal(t, domain.QuestionCount, resp.TotalQuestions)
		assert.Equal(t, "music", resp.Category)
		assert.Equal(t, "Música", resp.CategoryName)
		assert.Empty(t, resp.Selected)
		assert.False(t, resp.CanAdvance)
		// Каталог вариантов заканчивается "Nada en especial"
		require.NotEmpty(t, resp.Options)
		assert.Equal(t, domain.OptionNoPreference, resp.Options[len(resp.Options)-1])
	})

	t.Run("second questionnaire is rejected", func(t *testing.T) {
		svc := NewService(&fakeQuestionnaireRepo{createErr: questionnaireRepo.ErrQuestionnaireExists}, nopLogger{})

		_, err := svc.Start(context.Background(), 1)
		assert.ErrorIs(t, err, ErrQuestionnaireExists)
	})
}

func TestGet(t *testing.T) {
	t.Run("missing questionnaire", func(t *testing.T) {
		svc := NewService(&fakeQuestionnaireRepo{getErr: questionnaireRepo.ErrQuestionnaireNotFound}, nopLogger{})

		_, err := svc.Get(context.Background(), 1)
		assert.ErrorIs(t, err, ErrQuestionnaireNotFound)
	})

	t.Run("state reflects current question", func(t *testing.T) {
		q := domain.NewQuestionnaire(1)
		q.ID = 5
		require.NoError(t, q.ToggleOption(domain.CategoryMusic, "Conciertos"))
		require.NoError(t, q.Advance())

		svc := NewService(&fakeQuestionnaireRepo{questionnaire: q}, nopLogger{})

		resp, err := svc.Get(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, 1, resp.Index)
		assert.Equal(t, "culture", resp.Category)
		assert.Empty(t, resp.Selected)
		assert.Equal(t, []string{"Conciertos"}, resp.Answers["music"])
	})
}

func TestToggleOptionService(t *testing.T) {
	t.Run("selection toggles and enables advance", func(t *testing.T) {
		q := domain.NewQuestionnaire(1)
		q.ID = 5
		svc := NewService(&fakeQuestionnaireRepo{questionnaire: q}, nopLogger{})

		resp, err := svc.ToggleOption(context.Background(), 1, "Conciertos")
		require.NoError(t, err)

		assert.Equal(t, []string{"Conciertos"}, resp.Selected)
		assert.True(t, resp.CanAdvance)
	})

	t.Run("option from another category is unknown", func(t *testing.T) {
		q := domain.NewQuestionnaire(1)
		q.ID = 5
		svc := NewService(&fakeQuestionnaireRepo{questionnaire: q}, nopLogger{})

		// "Tapas" относится к гастрономии, текущий вопрос — музыка
		_, err := svc.ToggleOption(context.Background(), 1, "Tapas")
		assert.ErrorIs(t, err, ErrUnknownOption)
	})

	t.Run("no-preference displaces other selections", func(t *testing.T) {
		q := domain.NewQuestionnaire(1)
		q.ID = 5
		require.NoError(t, q.ToggleOption(domain.CategoryMusic, "Conciertos"))

		svc := NewService(&fakeQuestionnaireRepo{questionnaire: q}, nopLogger{})

		resp, err := svc.ToggleOption(context.Background(), 1, domain.OptionNoPreference)
		require.NoError(t, err)
		assert.Equal(t, []string{domain.OptionNoPreference}, resp.Selected)
	})
}

func TestBackService(t *testing.T) {
	t.Run("steps back and keeps answers", func(t *testing.T) {
		q := domain.NewQuestionnaire(1)
		q.ID = 5
		require.NoError(t, q.ToggleOption(domain.CategoryMusic, "Conciertos"))
		require.NoError(t, q.Advance())

		svc := NewService(&fakeQuestionnaireRepo{questionnaire: q}, nopLogger{})

		resp, err := svc.Back(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, 0, resp.Index)
		assert.Equal(t, []string{"Conciertos"}, resp.Selected)
	})

	t.Run("no-op on the first question", func(t *testing.T) {
		q := domain.NewQuestionnaire(1)
		q.ID = 5
		repo := &fakeQuestionnaireRepo{questionnaire: q}
		svc := NewService(repo, nopLogger{})

		resp, err := svc.Back(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 0, resp.Index)
	})
}
