package questionnaire

import "errors"

var (
	// ErrQuestionnaireNotFound возвращается, когда у пользователя нет активной анкеты
	ErrQuestionnaireNotFound = errors.New("questionnaire not found")

	// ErrQuestionnaireExists возвращается, когда у пользователя уже есть активная анкета
	ErrQuestionnaireExists = errors.New("active questionnaire already exists")

	// ErrUnknownOption возвращается при выборе варианта вне каталога категории
	ErrUnknownOption = errors.New("unknown questionnaire option")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
