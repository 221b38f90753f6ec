package get_selection

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SEP-BookingService/internal/api/middleware"
	"github.com/m04kA/SEP-BookingService/internal/service/selections"
	"github.com/m04kA/SEP-BookingService/internal/service/selections/models"
)

const testSecret = "test-secret"

type fakeService struct {
	response *models.SelectionResponse
	err      error
	gotID    int64
	gotUser  int64
}

func (f *fakeService) GetByID(_ context.Context, id int64, userID int64) (*models.SelectionResponse, error) {
	f.gotID = id
	f.gotUser = userID
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(service *fakeService) *mux.Router {
	handler := NewHandler(service, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth(testSecret))
	protected.HandleFunc("/selections/{selectionId}", handler.Handle).Methods(http.MethodGet)
	return r
}

func bearerToken(t *testing.T, userID int64) string {
	t.Helper()

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, jwtlib.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func TestHandleSuccess(t *testing.T) {
	service := &fakeService{response: &models.SelectionResponse{ID: 10, City: "Madrid", Total: 40}}
	router := newRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/selections/10", nil)
	req.Header.Set("Authorization", bearerToken(t, 1))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(10), service.gotID)
	assert.Equal(t, int64(1), service.gotUser)

	var body models.SelectionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Madrid", body.City)
	assert.Equal(t, 40, body.Total)
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		serviceErr error
		wantStatus int
	}{
		{name: "invalid id", path: "/api/v1/selections/abc", wantStatus: http.StatusBadRequest},
		{name: "not found", path: "/api/v1/selections/10", serviceErr: selections.ErrSelectionNotFound, wantStatus: http.StatusNotFound},
		{name: "foreign selection", path: "/api/v1/selections/10", serviceErr: selections.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "internal error", path: "/api/v1/selections/10", serviceErr: selections.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&fakeService{err: tt.serviceErr})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Authorization", bearerToken(t, 1))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleWithoutToken(t *testing.T) {
	router := newRouter(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/selections/10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
