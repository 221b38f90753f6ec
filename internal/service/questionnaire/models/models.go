package models

import "github.com/m04kA/SEP-BookingService/internal/domain"

// ToggleOptionRequest переключение варианта ответа текущего вопроса
type ToggleOptionRequest struct {
	Option string `json:"option"`
}

// QuestionnaireResponse состояние анкеты: текущий вопрос, каталог вариантов
// и все накопленные ответы
type QuestionnaireResponse struct {
	Index          int                 `json:"index"`
	TotalQuestions int                 `json:"totalQuestions"`
	Category       string              `json:"category"`
	CategoryName   string              `json:"categoryName"`
	Options        []string            `json:"options"`
	Selected       []string            `json:"selected"`
	Answers        map[string][]string `json:"answers"`
	CanAdvance     bool                `json:"canAdvance"`
}

// FromDomainQuestionnaire конвертирует доменную анкету в ответ сервиса
func FromDomainQuestionnaire(q *domain.Questionnaire) *QuestionnaireResponse {
	category := q.CurrentCategory()

	selected := q.Selected(category)
	if selected == nil {
		selected = []string{}
	}

	answers := make(map[string][]string, len(q.Answers))
	for c, opts := range q.Answers {
		answers[string(c)] = opts
	}

	return &QuestionnaireResponse{
		Index:          q.Index,
		TotalQuestions: domain.QuestionCount,
		Category:       string(category),
		CategoryName:   category.DisplayName(),
		Options:        domain.OptionsFor(category),
		Selected:       selected,
		Answers:        answers,
		CanAdvance:     q.CanAdvance(),
	}
}
