package advance_questionnaire

import "errors"

var (
	// ErrQuestionnaireNotFound возвращается, когда у пользователя нет активной анкеты
	ErrQuestionnaireNotFound = errors.New("advance_questionnaire: questionnaire not found")

	// ErrEmptySelection возвращается, когда переход заблокирован охраной:
	// в текущей категории не выбран ни один вариант
	ErrEmptySelection = errors.New("advance_questionnaire: no options selected for current category")

	// ErrIncomplete возвращается при попытке завершить анкету с пустыми категориями
	ErrIncomplete = errors.New("advance_questionnaire: questionnaire is incomplete")

	// ErrUnauthorized возвращается, когда Experiences API отклонил токен пользователя
	ErrUnauthorized = errors.New("advance_questionnaire: unauthorized")

	// ErrUpstream возвращается при ошибке отправки предпочтений
	// Анкета остаётся на последнем вопросе, пользователь может повторить next
	ErrUpstream = errors.New("advance_questionnaire: upstream request failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("advance_questionnaire: internal error")
)
