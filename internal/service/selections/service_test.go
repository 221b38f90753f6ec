package selections

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SEP-BookingService/internal/domain"
	selectionRepo "github.com/m04kA/SEP-BookingService/internal/infra/storage/selection"
	"github.com/m04kA/SEP-BookingService/internal/service/selections/models"
	"github.com/m04kA/SEP-BookingService/pkg/ptr"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeSelectionRepo struct {
	selection *domain.Selection
	createErr error
	getErr    error
	updateErr error
	deleteErr error
	deleted   []int64
}

func (f *fakeSelectionRepo) Create(_ context.Context, sel *domain.Selection) (*domain.Selection, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	sel.ID = 10
	f.selection = sel
	return sel, nil
}

func (f *fakeSelectionRepo) GetByID(_ context.Context, id int64) (*domain.Selection, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.selection, nil
}

func (f *fakeSelectionRepo) Update(_ context.Context, sel *domain.Selection) (*domain.Selection, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.selection = sel
	return sel, nil
}

func (f *fakeSelectionRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeReceiptRepo struct {
	receipts []*domain.BookingReceipt
	getErr   error
}

func (f *fakeReceiptRepo) GetByUser(_ context.Context, userID int64) ([]*domain.BookingReceipt, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.receipts, nil
}

type fixedTimeProvider struct{}

func (fixedTimeProvider) Now() time.Time { return testNow }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(selRepo *fakeSelectionRepo, recRepo *fakeReceiptRepo) *Service {
	if recRepo == nil {
		recRepo = &fakeReceiptRepo{}
	}
	svc := NewService(selRepo, recRepo, nopLogger{})
	svc.timeProvider = fixedTimeProvider{}
	return svc
}

func storedSelection() *domain.Selection {
	sel := domain.NewSelection(1)
	sel.ID = 10
	return sel
}

func TestCreate(t *testing.T) {
	t.Run("fresh selection with defaults", func(t *testing.T) {
		svc := newTestService(&fakeSelectionRepo{}, nil)

		resp, err := svc.Create(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, domain.DefaultBasePrice, resp.BasePrice)
		assert.Equal(t, domain.DefaultParticipantCount, resp.ParticipantCount)
		assert.Empty(t, resp.DiscardedCategories)
		// Свежий черновик не готов к отправке
		assert.NotEmpty(t, resp.ValidationErrors)
	})

	t.Run("second selection is rejected", func(t *testing.T) {
		svc := newTestService(&fakeSelectionRepo{createErr: selectionRepo.ErrSelectionExists}, nil)

		_, err := svc.Create(context.Background(), 1)
		assert.ErrorIs(t, err, ErrSelectionExists)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("owner gets the selection", func(t *testing.T) {
		svc := newTestService(&fakeSelectionRepo{selection: storedSelection()}, nil)

		resp, err := svc.GetByID(context.Background(), 10, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
	})

	t.Run("foreign selection is denied", func(t *testing.T) {
		svc := newTestService(&fakeSelectionRepo{selection: storedSelection()}, nil)

		_, err := svc.GetByID(context.Background(), 10, 99)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing selection", func(t *testing.T) {
		svc := newTestService(&fakeSelectionRepo{getErr: selectionRepo.ErrSelectionNotFound}, nil)

		_, err := svc.GetByID(context.Background(), 10, 1)
		assert.ErrorIs(t, err, ErrSelectionNotFound)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("partial update applies only provided fields", func(t *testing.T) {
		repo := &fakeSelectionRepo{selection: storedSelection()}
		svc := newTestService(repo, nil)

		resp, err := svc.Update(context.Background(), 10, 1, &models.UpdateSelectionRequest{
			City:      ptr.Ptr("Madrid"),
			BasePrice: ptr.Ptr(40),
		})
		require.NoError(t, err)

		assert.Equal(t, "Madrid", resp.City)
		assert.Equal(t, 40, resp.BasePrice)
		// Остальные поля не тронуты
		assert.Equal(t, domain.DefaultParticipantCount, resp.ParticipantCount)
	})

	t.Run("closed-set violations are rejected", func(t *testing.T) {
		tests := []struct {
			name string
			req  *models.UpdateSelectionRequest
		}{
			{name: "unsupported city", req: &models.UpdateSelectionRequest{City: ptr.Ptr("Atlantis")}},
			{name: "unknown time preference", req: &models.UpdateSelectionRequest{TimePreference: ptr.Ptr("midnight")}},
			{name: "base price outside the set", req: &models.UpdateSelectionRequest{BasePrice: ptr.Ptr(35)}},
			{name: "bad date format", req: &models.UpdateSelectionRequest{ExperienceDate: ptr.Ptr("15-03-2026")}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := newTestService(&fakeSelectionRepo{selection: storedSelection()}, nil)

				_, err := svc.Update(context.Background(), 10, 1, tt.req)
				assert.ErrorIs(t, err, ErrInvalidInput)
			})
		}
	})

	t.Run("zero participants are stored but flagged", func(t *testing.T) {
		svc := newTestService(&fakeSelectionRepo{selection: storedSelection()}, nil)

		resp, err := svc.Update(context.Background(), 10, 1, &models.UpdateSelectionRequest{
			ParticipantCount: ptr.Ptr(0),
		})
		require.NoError(t, err)

		assert.Equal(t, 0, resp.ParticipantCount)

		fields := make([]string, 0, len(resp.ValidationErrors))
		for _, fe := range resp.ValidationErrors {
			fields = append(fields, fe.Field)
		}
		assert.Contains(t, fields, "participantCount")
	})
}

func TestToggleDiscardService(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		svc := newTestService(&fakeSelectionRepo{selection: storedSelection()}, nil)

		_, err := svc.ToggleDiscard(context.Background(), 10, 1, "astronomy")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("toggle updates the stored selection", func(t *testing.T) {
		repo := &fakeSelectionRepo{selection: storedSelection()}
		svc := newTestService(repo, nil)

		resp, err := svc.ToggleDiscard(context.Background(), 10, 1, "sports")
		require.NoError(t, err)
		assert.Equal(t, []string{"sports"}, resp.DiscardedCategories)
	})

	t.Run("fourth discard returns unchanged list", func(t *testing.T) {
		sel := storedSelection()
		sel.DiscardedCategories = []domain.Category{
			domain.CategoryMusic, domain.CategoryCulture, domain.CategorySports,
		}
		repo := &fakeSelectionRepo{selection: sel}
		svc := newTestService(repo, nil)

		resp, err := svc.ToggleDiscard(context.Background(), 10, 1, "nightlife")
		require.NoError(t, err)
		assert.Equal(t, []string{"music", "culture", "sports"}, resp.DiscardedCategories)
	})
}

func TestQuote(t *testing.T) {
	sel := storedSelection()
	sel.BasePrice = 20
	sel.ParticipantCount = 2
	sel.DiscardedCategories = []domain.Category{domain.CategorySports, domain.CategoryNightlife}

	svc := newTestService(&fakeSelectionRepo{selection: sel}, nil)

	resp, err := svc.Quote(context.Background(), 10, 1)
	require.NoError(t, err)

	assert.Equal(t, 40, resp.BaseTotal)
	assert.Equal(t, 1, resp.ExtraDiscards)
	assert.Equal(t, 5, resp.Surcharge)
	assert.Equal(t, 45, resp.Total)
}

func TestDelete(t *testing.T) {
	repo := &fakeSelectionRepo{selection: storedSelection()}
	svc := newTestService(repo, nil)

	require.NoError(t, svc.Delete(context.Background(), 10, 1))
	assert.Equal(t, []int64{10}, repo.deleted)

	err := svc.Delete(context.Background(), 10, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestHistory(t *testing.T) {
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	recRepo := &fakeReceiptRepo{receipts: []*domain.BookingReceipt{
		{
			ID:               1,
			UserID:           1,
			UpstreamID:       555,
			City:             "Madrid",
			TimePreference:   domain.TimePreferenceNight,
			ExperienceDate:   date,
			ParticipantCount: 3,
			Total:            190,
			CreatedAt:        testNow,
		},
	}}

	svc := newTestService(&fakeSelectionRepo{}, recRepo)

	resp, err := svc.History(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, resp.Receipts, 1)
	assert.Equal(t, int64(555), resp.Receipts[0].BookingID)
	assert.Equal(t, "2026-03-15", resp.Receipts[0].ExperienceDate)
	assert.Equal(t, 190, resp.Receipts[0].Total)
}
