package get_available_staff

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_staff: invalid input data")

	// ErrMalformedWindow возвращается, когда время начала позже времени окончания
	ErrMalformedWindow = errors.New("get_available_staff: time from must not be after time to")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_staff: internal error")
)
