package staff

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("staff: staff not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("staff: invalid input data")

	// ErrInvalidTimeRange возвращается, когда время начала не раньше времени окончания
	ErrInvalidTimeRange = errors.New("staff: invalid time range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("staff: internal error")
)
