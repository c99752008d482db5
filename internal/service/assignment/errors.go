package assignment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("assignment: invalid input data")

	// ErrMalformedWindow возвращается, когда время начала не раньше времени окончания
	ErrMalformedWindow = errors.New("assignment: malformed time window")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("assignment: internal error")
)
