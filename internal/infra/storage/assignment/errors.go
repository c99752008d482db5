package assignment

import "errors"

var (
	// ErrInvalidBookingType возвращается для типа бронирования без колонки ссылки
	ErrInvalidBookingType = errors.New("assignment.repository: invalid booking type")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("assignment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("assignment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("assignment.repository: failed to scan row")
)
