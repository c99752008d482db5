package bookings

import (
	"context"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	assignmentModels "github.com/m04kA/SMC-StaffingService/internal/service/assignment/models"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, bookingType domain.BookingType, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingType domain.BookingType, id int64, status domain.BookingStatus) error
}

// AssignmentRepository интерфейс репозитория назначений персонала
type AssignmentRepository interface {
	DeleteByReservation(ctx context.Context, bookingType domain.BookingType, reservationID int64) (int64, error)
}

// AssignmentService интерфейс чтения назначенного персонала
type AssignmentService interface {
	GetAssignedStaff(ctx context.Context, bookingType domain.BookingType, reservationID int64) ([]assignmentModels.AssignedStaff, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
