package experienceapi

import "errors"

var (
	// ErrUnauthorized возвращается, когда Experiences API отклонил bearer-токен
	ErrUnauthorized = errors.New("experienceapi client: unauthorized")

	// ErrRequestFailed возвращается при любом другом неуспешном ответе
	// или сетевой ошибке; повторных попыток клиент не делает
	ErrRequestFailed = errors.New("experienceapi client: request failed")

	// ErrInvalidResponse возвращается при некорректном теле ответа
	ErrInvalidResponse = errors.New("experienceapi client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("experienceapi client: internal error")
)
