package domain

import (
	"fmt"
	"time"
)

// Selection черновик бронирования впечатления
// Существует не более одного активного черновика на пользователя;
// удаляется после успешной отправки во внешний Experiences API
type Selection struct {
	ID               int64
	UserID           int64
	City             string
	TimePreference   TimePreference // пустое значение = еще не выбрано
	BasePrice        int
	ParticipantCount int

	// DiscardedCategories упорядоченный набор исключённых категорий
	// Каждая категория встречается не более одного раза, максимум MaxDiscardedCategories
	DiscardedCategories []Category

	ExperienceDate *time.Time // nil = дата еще не выбрана
	Notes          *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSelection создает свежий черновик с дефолтными значениями
func NewSelection(userID int64) *Selection {
	return &Selection{
		UserID:              userID,
		BasePrice:           DefaultBasePrice,
		ParticipantCount:    DefaultParticipantCount,
		DiscardedCategories: []Category{},
	}
}

// HasDiscarded проверяет, исключена ли категория
func (s *Selection) HasDiscarded(category Category) bool {
	for _, c := range s.DiscardedCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ToggleDiscard переключает исключение категории
// Если категория уже исключена — убирает её из набора.
// Если набор полон (MaxDiscardedCategories) — молча ничего не делает:
// интерфейс не показывает ошибку, четвёртое исключение просто не применяется.
// Возвращает true, если набор изменился.
func (s *Selection) ToggleDiscard(category Category) bool {
	for i, c := range s.DiscardedCategories {
		if c == category {
			s.DiscardedCategories = append(s.DiscardedCategories[:i], s.DiscardedCategories[i+1:]...)
			return true
		}
	}

	if len(s.DiscardedCategories) >= MaxDiscardedCategories {
		return false
	}

	s.DiscardedCategories = append(s.DiscardedCategories, category)
	return true
}

// FieldError ошибка валидации отдельного поля черновика
type FieldError struct {
	Field   string
	Message string
}

// Validate возвращает список проблем, мешающих отправке черновика
// Проблемные значения сохраняются в черновике как есть — блокируется
// только сама отправка
func (s *Selection) Validate(now time.Time) []FieldError {
	var errs []FieldError

	if s.City == "" {
		errs = append(errs, FieldError{Field: "city", Message: "city is required"})
	} else if !IsSupportedCity(s.City) {
		errs = append(errs, FieldError{Field: "city", Message: fmt.Sprintf("unsupported city: %s", s.City)})
	}

	if s.TimePreference == "" {
		errs = append(errs, FieldError{Field: "timePreference", Message: "time preference is required"})
	} else if !s.TimePreference.IsValid() {
		errs = append(errs, FieldError{Field: "timePreference", Message: "invalid time preference"})
	}

	if !IsValidBasePrice(s.BasePrice) {
		errs = append(errs, FieldError{Field: "basePrice", Message: "base price must be one of 20, 40, 60"})
	}

	if s.ParticipantCount < 1 {
		errs = append(errs, FieldError{Field: "participantCount", Message: "participant count must be at least 1"})
	}

	if s.ExperienceDate == nil {
		errs = append(errs, FieldError{Field: "experienceDate", Message: "experience date is required"})
	} else if !IsDateFarEnough(*s.ExperienceDate, now) {
		errs = append(errs, FieldError{
			Field:   "experienceDate",
			Message: fmt.Sprintf("experience date must be at least %d days ahead", MinAdvanceDays),
		})
	}

	if len(s.DiscardedCategories) > MaxDiscardedCategories {
		errs = append(errs, FieldError{Field: "discardedCategories", Message: "too many discarded categories"})
	}

	if s.Notes != nil && len(*s.Notes) > MaxNotesLength {
		errs = append(errs, FieldError{Field: "notes", Message: "notes are too long"})
	}

	return errs
}

// IsSubmittable проверяет, готов ли черновик к отправке
func (s *Selection) IsSubmittable(now time.Time) bool {
	return len(s.Validate(now)) == 0
}

// IsDateFarEnough проверяет, что дата впечатления не раньше, чем
// MinAdvanceDays дней от текущей даты (сравниваются только даты, без времени)
func IsDateFarEnough(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	minDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, MinAdvanceDays)
	return !dateOnly.Before(minDate)
}
