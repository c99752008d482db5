package create_blocked_date

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_blocked_date: invalid input data")

	// ErrMalformedWindow возвращается, когда время начала не раньше времени окончания
	ErrMalformedWindow = errors.New("create_blocked_date: start time must be before end time")

	// ErrSlotConflict возвращается, когда на дату уже есть пересекающиеся резервирования
	ErrSlotConflict = errors.New("create_blocked_date: date has conflicting reservations")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_blocked_date: internal error")
)

// ConflictError отказ из-за пересечения с перечисленными резервированиями
type ConflictError struct {
	Conflicts []domain.ReservationWindow
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %d conflicting reservation(s)", ErrSlotConflict, len(e.Conflicts))
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotConflict
}
