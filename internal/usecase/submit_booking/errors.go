package submit_booking

import "errors"

var (
	// ErrSelectionNotFound возвращается, когда черновик не найден
	ErrSelectionNotFound = errors.New("submit_booking: selection not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("submit_booking: access denied")

	// ErrValidation возвращается, когда черновик не готов к отправке
	// (обязательное поле не заполнено или некорректно)
	ErrValidation = errors.New("submit_booking: selection is not submittable")

	// ErrUnauthorized возвращается, когда Experiences API отклонил токен пользователя
	ErrUnauthorized = errors.New("submit_booking: unauthorized")

	// ErrUpstream возвращается при любой другой ошибке Experiences API
	// Черновик при этом сохраняется без изменений, пользователь может повторить отправку
	ErrUpstream = errors.New("submit_booking: upstream request failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
