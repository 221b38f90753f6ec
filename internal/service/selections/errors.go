package selections

import "errors"

var (
	// ErrSelectionNotFound возвращается, когда черновик не найден
	ErrSelectionNotFound = errors.New("selection not found")

	// ErrSelectionExists возвращается, когда у пользователя уже есть активный черновик
	ErrSelectionExists = errors.New("active selection already exists")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
