package models

import (
	"time"

	"github.com/m04kA/SEP-BookingService/internal/domain"
)

// UpdateSelectionRequest частичное обновление черновика
// Указатели: nil = поле не меняется
type UpdateSelectionRequest struct {
	City             *string `json:"city,omitempty"`
	TimePreference   *string `json:"timePreference,omitempty"`
	BasePrice        *int    `json:"basePrice,omitempty"`
	ParticipantCount *int    `json:"participantCount,omitempty"`
	ExperienceDate   *string `json:"experienceDate,omitempty"` // YYYY-MM-DD
	Notes            *string `json:"notes,omitempty"`
}

// FieldError ошибка валидации отдельного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SelectionResponse черновик с производной стоимостью и списком проблем валидации
// Некорректные значения (например, нулевое количество участников) сохраняются
// и возвращаются как есть: ValidationErrors лишь блокируют отправку
type SelectionResponse struct {
	ID                  int64        `json:"id"`
	City                string       `json:"city"`
	TimePreference      string       `json:"timePreference"`
	BasePrice           int          `json:"basePrice"`
	ParticipantCount    int          `json:"participantCount"`
	DiscardedCategories []string     `json:"discardedCategories"`
	ExperienceDate      *string      `json:"experienceDate,omitempty"`
	Notes               *string      `json:"notes,omitempty"`
	Total               int          `json:"total"`
	ValidationErrors    []FieldError `json:"validationErrors"`
	CreatedAt           string       `json:"createdAt"`
	UpdatedAt           string       `json:"updatedAt"`
}

// QuoteResponse разбивка стоимости черновика
type QuoteResponse struct {
	BasePrice        int `json:"basePrice"`
	ParticipantCount int `json:"participantCount"`
	BaseTotal        int `json:"baseTotal"`
	DiscardedCount   int `json:"discardedCount"`
	ExtraDiscards    int `json:"extraDiscards"`
	Surcharge        int `json:"surcharge"`
	Total            int `json:"total"`
}

// ReceiptResponse запись об отправленном бронировании
type ReceiptResponse struct {
	ID               int64  `json:"id"`
	BookingID        int64  `json:"bookingId"` // идентификатор из Experiences API
	City             string `json:"city"`
	TimePreference   string `json:"timePreference"`
	ExperienceDate   string `json:"experienceDate"`
	ParticipantCount int    `json:"participantCount"`
	Total            int    `json:"total"`
	CreatedAt        string `json:"createdAt"`
}

// ReceiptListResponse список записей пользователя
type ReceiptListResponse struct {
	Receipts []ReceiptResponse `json:"receipts"`
}

// FromDomainSelection конвертирует доменный черновик в ответ сервиса
func FromDomainSelection(sel *domain.Selection, now time.Time) *SelectionResponse {
	categories := make([]string, len(sel.DiscardedCategories))
	for i, c := range sel.DiscardedCategories {
		categories[i] = string(c)
	}

	var experienceDate *string
	if sel.ExperienceDate != nil {
		formatted := sel.ExperienceDate.Format(domain.DateFormat)
		experienceDate = &formatted
	}

	validationErrors := make([]FieldError, 0)
	for _, fe := range sel.Validate(now) {
		validationErrors = append(validationErrors, FieldError{Field: fe.Field, Message: fe.Message})
	}

	return &SelectionResponse{
		ID:                  sel.ID,
		City:                sel.City,
		TimePreference:      string(sel.TimePreference),
		BasePrice:           sel.BasePrice,
		ParticipantCount:    sel.ParticipantCount,
		DiscardedCategories: categories,
		ExperienceDate:      experienceDate,
		Notes:               sel.Notes,
		Total:               domain.ComputeTotal(sel),
		ValidationErrors:    validationErrors,
		CreatedAt:           sel.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           sel.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainQuote конвертирует разбивку стоимости в ответ сервиса
func FromDomainQuote(q domain.PriceQuote) *QuoteResponse {
	return &QuoteResponse{
		BasePrice:        q.BasePrice,
		ParticipantCount: q.ParticipantCount,
		BaseTotal:        q.BaseTotal,
		DiscardedCount:   q.DiscardedCount,
		ExtraDiscards:    q.ExtraDiscards,
		Surcharge:        q.Surcharge,
		Total:            q.Total,
	}
}

// FromDomainReceipts конвертирует записи об отправленных бронированиях
func FromDomainReceipts(receipts []*domain.BookingReceipt) *ReceiptListResponse {
	result := make([]ReceiptResponse, 0, len(receipts))
	for _, rec := range receipts {
		result = append(result, ReceiptResponse{
			ID:               rec.ID,
			BookingID:        rec.UpstreamID,
			City:             rec.City,
			TimePreference:   string(rec.TimePreference),
			ExperienceDate:   rec.ExperienceDate.Format(domain.DateFormat),
			ParticipantCount: rec.ParticipantCount,
			Total:            rec.Total,
			CreatedAt:        rec.CreatedAt.Format(time.RFC3339),
		})
	}
	return &ReceiptListResponse{Receipts: result}
}
