package submit_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SEP-BookingService/internal/domain"
	"github.com/m04kA/SEP-BookingService/internal/integrations/experienceapi"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeSelectionRepo struct {
	selection *domain.Selection
	getErr    error
	deleteErr error
	deleted   []int64
}

func (f *fakeSelectionRepo) GetByID(_ context.Context, id int64) (*domain.Selection, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.selection, nil
}

func (f *fakeSelectionRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeReceiptRepo struct {
	created   []*domain.BookingReceipt
	createErr error
}

func (f *fakeReceiptRepo) Create(_ context.Context, rec *domain.BookingReceipt) (*domain.BookingReceipt, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, rec)
	return rec, nil
}

type fakeAPIClient struct {
	response *experienceapi.CreateReservaResponse
	err      error
	requests []*experienceapi.CreateReservaRequest
	tokens   []string
}

func (f *fakeAPIClient) CreateReserva(_ context.Context, token string, req *experienceapi.CreateReservaRequest) (*experienceapi.CreateReservaResponse, error) {
	f.tokens = append(f.tokens, token)
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct{}

func (fixedTimeProvider) Now() time.Time { return testNow }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func submittableSelection() *domain.Selection {
	date := testNow.AddDate(0, 0, domain.MinAdvanceDays)
	sel := domain.NewSelection(1)
	sel.ID = 10
	sel.City = "Madrid"
	sel.TimePreference = domain.TimePreferenceNight
	sel.BasePrice = 60
	sel.ParticipantCount = 3
	sel.DiscardedCategories = []domain.Category{domain.CategorySports, domain.CategoryNightlife, domain.CategoryGastronomy}
	sel.ExperienceDate = &date
	return sel
}

func newTestUseCase(selRepo *fakeSelectionRepo, recRepo *fakeReceiptRepo, api *fakeAPIClient) *UseCase {
	uc := NewUseCase(selRepo, recRepo, api, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{}
	return uc
}

func TestExecuteSuccess(t *testing.T) {
	selRepo := &fakeSelectionRepo{selection: submittableSelection()}
	recRepo := &fakeReceiptRepo{}
	api := &fakeAPIClient{response: &experienceapi.CreateReservaResponse{ID: 555}}

	uc := newTestUseCase(selRepo, recRepo, api)

	resp, err := uc.Execute(context.Background(), &Request{SelectionID: 10, UserID: 1, Token: "token-1"})
	require.NoError(t, err)

	assert.Equal(t, int64(555), resp.BookingID)
	// 60*3 + 2*5
	assert.Equal(t, 190, resp.Total)

	// Черновик удален, запись создана
	assert.Equal(t, []int64{10}, selRepo.deleted)
	require.Len(t, recRepo.created, 1)
	assert.Equal(t, int64(555), recRepo.created[0].UpstreamID)
	assert.Equal(t, 190, recRepo.created[0].Total)

	// Токен пользователя передается во внешний API как есть
	assert.Equal(t, []string{"token-1"}, api.tokens)
	require.Len(t, api.requests, 1)
	assert.Equal(t, 190, api.requests[0].Price)
	assert.Equal(t, "Madrid", api.requests[0].Location)
}

func TestExecuteValidationFailure(t *testing.T) {
	sel := submittableSelection()
	sel.ExperienceDate = nil

	selRepo := &fakeSelectionRepo{selection: sel}
	api := &fakeAPIClient{}
	uc := newTestUseCase(selRepo, &fakeReceiptRepo{}, api)

	_, err := uc.Execute(context.Background(), &Request{SelectionID: 10, UserID: 1, Token: "token-1"})
	assert.ErrorIs(t, err, ErrValidation)

	// До внешнего API дело не дошло, черновик не тронут
	assert.Empty(t, api.requests)
	assert.Empty(t, selRepo.deleted)
}

func TestExecuteAccessDenied(t *testing.T) {
	selRepo := &fakeSelectionRepo{selection: submittableSelection()}
	uc := newTestUseCase(selRepo, &fakeReceiptRepo{}, &fakeAPIClient{})

	_, err := uc.Execute(context.Background(), &Request{SelectionID: 10, UserID: 99, Token: "token-1"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecuteSelectionNotFound(t *testing.T) {
	selRepo := &fakeSelectionRepo{getErr: errors.New("no rows")}
	uc := newTestUseCase(selRepo, &fakeReceiptRepo{}, &fakeAPIClient{})

	_, err := uc.Execute(context.Background(), &Request{SelectionID: 10, UserID: 1, Token: "token-1"})
	assert.ErrorIs(t, err, ErrSelectionNotFound)
}

func TestExecuteMissingToken(t *testing.T) {
	selRepo := &fakeSelectionRepo{selection: submittableSelection()}
	uc := newTestUseCase(selRepo, &fakeReceiptRepo{}, &fakeAPIClient{})

	_, err := uc.Execute(context.Background(), &Request{SelectionID: 10, UserID: 1})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestExecuteUpstreamFailureKeepsSelection(t *testing.T) {
	selRepo := &fakeSelectionRepo{selection: submittableSelection()}
	recRepo := &fakeReceiptRepo{}
	api := &fakeAPIClient{err: experienceapi.ErrRequestFailed}

	uc := newTestUseCase(selRepo, recRepo, api)

	_, err := uc.Execute(context.Background(), &Request{SelectionID: 10, UserID: 1, Token: "token-1"})
	assert.ErrorIs(t, err, ErrUpstream)

	// Черновик остается для повторной отправки
	assert.Empty(t, selRepo.deleted)
	assert.Empty(t, recRepo.created)
}

func TestExecuteUpstreamUnauthorized(t *testing.T) {
	selRepo := &fakeSelectionRepo{selection: submittableSelection()}
	api := &fakeAPIClient{err: experienceapi.ErrUnauthorized}

	uc := newTestUseCase(selRepo, &fakeReceiptRepo{}, api)

	_, err := uc.Execute(context.Background(), &Request{SelectionID: 10, UserID: 1, Token: "expired"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, selRepo.deleted)
}

func TestExecuteCleanupFailureStillSucceeds(t *testing.T) {
	selRepo := &fakeSelectionRepo{
		selection: submittableSelection(),
		deleteErr: errors.New("connection lost"),
	}
	api := &fakeAPIClient{response: &experienceapi.CreateReservaResponse{ID: 777}}

	uc := newTestUseCase(selRepo, &fakeReceiptRepo{}, api)

	// Бронирование во внешнем API уже создано: пользователь получает
	// booking id несмотря на ошибку локальной очистки
	resp, err := uc.Execute(context.Background(), &Request{SelectionID: 10, UserID: 1, Token: "token-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(777), resp.BookingID)
}
