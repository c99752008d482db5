package get_available_staff

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/internal/service/conflicts"
)

// AvailabilityRepository интерфейс чтения недельных окон
type AvailabilityRepository interface {
	GetAvailableByWeekday(ctx context.Context, day domain.Weekday) ([]domain.StaffAvailabilityWindow, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// ReservationRepository интерфейс чтения занятости календаря
type ReservationRepository interface {
	GetByDate(ctx context.Context, date time.Time, kinds []domain.ReservationKind) ([]domain.ReservationWindow, error)
}

// ConflictChecker интерфейс проверки пересечений
type ConflictChecker interface {
	HasConflict(candidate conflicts.Candidate, existing []domain.ReservationWindow) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
