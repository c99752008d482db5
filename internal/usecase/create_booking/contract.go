package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/internal/service/assignment/models"
	"github.com/m04kA/SMC-StaffingService/internal/service/conflicts"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ReservationRepository интерфейс чтения занятости календаря
type ReservationRepository interface {
	GetByDate(ctx context.Context, date time.Time, kinds []domain.ReservationKind) ([]domain.ReservationWindow, error)
}

// ConflictChecker интерфейс проверки пересечений
type ConflictChecker interface {
	FindConflicts(candidate conflicts.Candidate, existing []domain.ReservationWindow) []domain.ReservationWindow
}

// AssignmentService интерфейс автоматического назначения персонала
type AssignmentService interface {
	Assign(ctx context.Context, req *models.AssignRequest) (*models.Result, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsCollector учёт отклонённых из-за конфликта действий
type MetricsCollector interface {
	ObserveConflict(action string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
