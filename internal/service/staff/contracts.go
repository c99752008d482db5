package staff

import (
	"context"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
)

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Staff, error)
}

// AvailabilityRepository интерфейс репозитория недельных окон
type AvailabilityRepository interface {
	GetByStaff(ctx context.Context, staffID int64) ([]domain.StaffAvailabilityWindow, error)
	ReplaceForStaff(ctx context.Context, staffID int64, windows []domain.StaffAvailabilityWindow) error
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
