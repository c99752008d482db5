package check_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_slot: invalid input data")

	// ErrMalformedWindow возвращается, когда время начала не раньше времени окончания
	ErrMalformedWindow = errors.New("check_slot: time from must be before time to")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_slot: internal error")
)
