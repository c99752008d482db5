package create_blocked_date

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/internal/service/conflicts"
)

// ReservationRepository интерфейс репозитория занятости календаря
type ReservationRepository interface {
	GetByDate(ctx context.Context, date time.Time, kinds []domain.ReservationKind) ([]domain.ReservationWindow, error)
	CreateBlockedDate(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error)
}

// ConflictChecker интерфейс проверки пересечений
type ConflictChecker interface {
	FindConflicts(candidate conflicts.Candidate, existing []domain.ReservationWindow) []domain.ReservationWindow
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsCollector учёт отклонённых из-за конфликта действий
type MetricsCollector interface {
	ObserveConflict(action string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
