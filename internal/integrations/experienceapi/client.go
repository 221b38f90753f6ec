package experienceapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего Experiences API
// Все вызовы одноразовые: без повторных попыток и без опроса статуса
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Experiences API
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateReserva отправляет бронирование
// POST /bookings/crear-reserva/ с bearer-токеном пользователя
func (c *Client) CreateReserva(ctx context.Context, token string, req *CreateReservaRequest) (*CreateReservaResponse, error) {
	url := fmt.Sprintf("%s/bookings/crear-reserva/", c.baseURL)

	resp, err := c.do(ctx, http.MethodPost, url, token, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrRequestFailed, resp.StatusCode, string(body))
	}

	var result CreateReservaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("CreateReserva: booking accepted by upstream, id=%d", result.ID)
	return &result, nil
}

// UpdatePreferences отправляет предпочтения пользователя
// PATCH /users/preferences/ с bearer-токеном пользователя
func (c *Client) UpdatePreferences(ctx context.Context, token string, req *PreferencesRequest) error {
	url := fmt.Sprintf("%s/users/preferences/", c.baseURL)

	resp, err := c.do(ctx, http.MethodPatch, url, token, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		c.log.Info("UpdatePreferences: preferences accepted by upstream")
		return nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrRequestFailed, resp.StatusCode, string(body))
	}
}

func (c *Client) do(ctx context.Context, method, url, token string, payload interface{}) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrRequestFailed, err)
	}

	return resp, nil
}
