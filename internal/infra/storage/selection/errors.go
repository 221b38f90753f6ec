package selection

import "errors"

var (
	// ErrSelectionNotFound возвращается, когда черновик не найден
	ErrSelectionNotFound = errors.New("selection.repository: selection not found")

	// ErrSelectionExists возвращается при попытке создать второй активный черновик пользователя
	ErrSelectionExists = errors.New("selection.repository: active selection already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("selection.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("selection.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("selection.repository: failed to scan row")
)
