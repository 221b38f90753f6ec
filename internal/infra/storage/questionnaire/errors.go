package questionnaire

import "errors"

var (
	// ErrQuestionnaireNotFound возвращается, когда анкета не найдена
	ErrQuestionnaireNotFound = errors.New("questionnaire.repository: questionnaire not found")

	// ErrQuestionnaireExists возвращается при попытке создать вторую активную анкету пользователя
	ErrQuestionnaireExists = errors.New("questionnaire.repository: active questionnaire already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("questionnaire.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("questionnaire.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("questionnaire.repository: failed to scan row")

	// ErrEncodeAnswers возвращается при ошибке сериализации ответов в JSONB
	ErrEncodeAnswers = errors.New("questionnaire.repository: failed to encode answers")
)
