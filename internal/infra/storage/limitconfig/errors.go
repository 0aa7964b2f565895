package limitconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация ограничений не сохранена
	ErrConfigNotFound = errors.New("limitconfig.repository: config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("limitconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("limitconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("limitconfig.repository: failed to scan row")

	// ErrCorruptConfig возвращается при нечитаемом JSON документе конфигурации
	// Вызывающая сторона трактует это как отсутствие конфигурации
	ErrCorruptConfig = errors.New("limitconfig.repository: corrupt config document")
)
