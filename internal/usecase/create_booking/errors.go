package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrMalformedWindow возвращается, когда время начала не раньше времени окончания
	ErrMalformedWindow = errors.New("create_booking: time from must be before time to")

	// ErrSlotConflict возвращается, когда время пересекается с занятым интервалом календаря
	ErrSlotConflict = errors.New("create_booking: slot conflicts with an existing reservation")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

func isConflict(err error) bool {
	return errors.Is(err, ErrSlotConflict)
}
