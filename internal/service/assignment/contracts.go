package assignment

import (
	"context"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/internal/integrations/notificationservice"
)

// AvailabilityRepository источник недельных окон доступности
type AvailabilityRepository interface {
	GetAvailableByWeekday(ctx context.Context, day domain.Weekday) ([]domain.StaffAvailabilityWindow, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	CreateBatch(ctx context.Context, items []domain.AssignedStaff) ([]domain.AssignedStaff, error)
	DeleteByReservation(ctx context.Context, bookingType domain.BookingType, reservationID int64) (int64, error)
	GetByReservation(ctx context.Context, bookingType domain.BookingType, reservationID int64) ([]domain.AssignedStaff, error)
}

// NotificationClient интерфейс клиента сервиса уведомлений
type NotificationClient interface {
	NotifyStaffAssigned(ctx context.Context, notification *notificationservice.StaffAssignedNotification) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsCollector учёт результатов назначения
type MetricsCollector interface {
	ObserveAssignment(bookingType string, assigned int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
