package update_selection

import (
	"github.com/m04kA/SEP-BookingService/internal/service/selections/models"
)

// UpdateSelectionRequest HTTP request model
// Указатели: отсутствующие поля не меняются
type UpdateSelectionRequest struct {
	City             *string `json:"city,omitempty"`
	TimePreference   *string `json:"timePreference,omitempty"`
	BasePrice        *int    `json:"basePrice,omitempty"`
	ParticipantCount *int    `json:"participantCount,omitempty"`
	ExperienceDate   *string `json:"experienceDate,omitempty"` // "2025-10-15"
	Notes            *string `json:"notes,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateSelectionRequest) ToServiceRequest() *models.UpdateSelectionRequest {
	return &models.UpdateSelectionRequest{
		City:             r.City,
		TimePreference:   r.TimePreference,
		BasePrice:        r.BasePrice,
		ParticipantCount: r.ParticipantCount,
		ExperienceDate:   r.ExperienceDate,
		Notes:            r.Notes,
	}
}
