package domain

import (
	"errors"
	"time"
)

var (
	// ErrUnknownOption возвращается при попытке выбрать вариант вне каталога категории
	ErrUnknownOption = errors.New("domain: unknown questionnaire option")

	// ErrEmptySelection возвращается при попытке перейти к следующему вопросу
	// без единого выбранного варианта в текущей категории
	ErrEmptySelection = errors.New("domain: no options selected for current category")
)

// QuestionCount количество вопросов анкеты (по одному на категорию)
var QuestionCount = len(AllCategories)

// Questionnaire анкета предпочтений — явный конечный автомат
// Состояния: индексы вопросов 0..QuestionCount-1; терминальное состояние
// (успешная отправка) достигается только после подтверждения внешнего API,
// после чего анкета удаляется
type Questionnaire struct {
	ID     int64
	UserID int64

	// Index индекс текущего вопроса
	Index int

	// Answers выбранные варианты по категориям
	// Порядок внутри категории соответствует порядку выбора
	Answers map[Category][]string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewQuestionnaire создает анкету в начальном состоянии (первый вопрос, пустые ответы)
func NewQuestionnaire(userID int64) *Questionnaire {
	return &Questionnaire{
		UserID:  userID,
		Index:   0,
		Answers: make(map[Category][]string),
	}
}

// CurrentCategory категория текущего вопроса
func (q *Questionnaire) CurrentCategory() Category {
	return AllCategories[q.Index]
}

// IsLast проверяет, что автомат находится на последнем вопросе
func (q *Questionnaire) IsLast() bool {
	return q.Index >= QuestionCount-1
}

// Selected выбранные варианты для категории
func (q *Questionnaire) Selected(category Category) []string {
	return q.Answers[category]
}

// ToggleOption переключает вариант ответа в категории
// Правило исключительности: выбор OptionNoPreference очищает остальные
// варианты категории; выбор любого другого варианта убирает OptionNoPreference
func (q *Questionnaire) ToggleOption(category Category, option string) error {
	if !IsValidOption(category, option) {
		return ErrUnknownOption
	}

	selected := q.Answers[category]

	// Повторный выбор снимает отметку
	for i, o := range selected {
		if o == option {
			q.Answers[category] = append(selected[:i], selected[i+1:]...)
			return nil
		}
	}

	if option == OptionNoPreference {
		q.Answers[category] = []string{OptionNoPreference}
		return nil
	}

	// Убираем OptionNoPreference, если он был выбран ранее
	filtered := selected[:0]
	for _, o := range selected {
		if o != OptionNoPreference {
			filtered = append(filtered, o)
		}
	}
	q.Answers[category] = append(filtered, option)
	return nil
}

// CanAdvance проверяет охрану перехода next: в текущей категории
// должен быть выбран хотя бы один вариант
func (q *Questionnaire) CanAdvance() bool {
	return len(q.Answers[q.CurrentCategory()]) > 0
}

// Advance переход next: увеличивает индекс вопроса
// Заблокирован (ErrEmptySelection), если в текущей категории ничего не выбрано.
// С последнего вопроса индекс не меняется — завершение выполняет use case
// после подтверждения внешнего API
func (q *Questionnaire) Advance() error {
	if !q.CanAdvance() {
		return ErrEmptySelection
	}
	if !q.IsLast() {
		q.Index++
	}
	return nil
}

// Back переход prev: уменьшает индекс вопроса
// Никогда не охраняется и не очищает ответы; на первом вопросе — no-op
func (q *Questionnaire) Back() {
	if q.Index > 0 {
		q.Index--
	}
}

// IsComplete проверяет, что во всех категориях выбран хотя бы один вариант
func (q *Questionnaire) IsComplete() bool {
	for _, c := range AllCategories {
		if len(q.Answers[c]) == 0 {
			return false
		}
	}
	return true
}
