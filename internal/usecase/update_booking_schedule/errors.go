package update_booking_schedule

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking_schedule: booking not found")

	// ErrCannotReschedule возвращается для отменённых и завершённых бронирований
	ErrCannotReschedule = errors.New("update_booking_schedule: booking cannot be rescheduled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking_schedule: invalid input data")

	// ErrInvalidDate возвращается при переносе на прошедшую дату
	ErrInvalidDate = errors.New("update_booking_schedule: invalid booking date")

	// ErrMalformedWindow возвращается, когда время начала не раньше времени окончания
	ErrMalformedWindow = errors.New("update_booking_schedule: time from must be before time to")

	// ErrSlotConflict возвращается, когда новое время пересекается с занятым интервалом
	ErrSlotConflict = errors.New("update_booking_schedule: slot conflicts with an existing reservation")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking_schedule: internal error")
)
