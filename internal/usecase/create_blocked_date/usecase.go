package create_blocked_date

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/internal/service/conflicts"
)

// UseCase use case блокировки даты в календаре
// Блокировка отклоняется, если пересекается с любым активным резервированием той же даты
type UseCase struct {
	reservationRepo ReservationRepository
	checker         ConflictChecker
	txManager       TransactionManager
	metrics         MetricsCollector
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	checker ConflictChecker,
	txManager TransactionManager,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		checker:         checker,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case блокировки даты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBlockedDate: user=%d, date=%s, whole day=%t",
		req.UserID, req.Date.Format(domain.DateFormat), req.StartTime == nil)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBlockedDate: validation failed: %v", err)
		return nil, err
	}

	var result *domain.BlockedDate

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.reservationRepo.GetByDate(txCtx, req.Date, nil)
		if err != nil {
			return fmt.Errorf("%w: failed to get reservations: %w", ErrInternal, err)
		}

		candidate := conflicts.Candidate{Date: req.Date, From: req.StartTime, To: req.EndTime}
		if found := uc.checker.FindConflicts(candidate, existing); len(found) > 0 {
			return &ConflictError{Conflicts: found}
		}

		created, err := uc.reservationRepo.CreateBlockedDate(txCtx, &domain.BlockedDate{
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Reason:    req.Reason,
			CreatedBy: req.UserID,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create blocked date: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotConflict) {
			uc.logger.Warn("CreateBlockedDate: %v", err)
			if uc.metrics != nil {
				uc.metrics.ObserveConflict("create_blocked_date")
			}
		} else {
			uc.logger.Error("CreateBlockedDate: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBlockedDate: successfully created blocked date id=%d", result.ID)

	return &Response{
		ID:        result.ID,
		Date:      result.Date,
		StartTime: result.StartTime,
		EndTime:   result.EndTime,
		WholeDay:  result.IsWholeDay(),
		Reason:    result.Reason,
		CreatedAt: result.CreatedAt,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if (req.StartTime == nil) != (req.EndTime == nil) {
		return fmt.Errorf("%w: startTime and endTime must be set together", ErrInvalidInput)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}
	if req.StartTime == nil {
		return nil
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}
	if !req.StartTime.IsBefore(*req.EndTime) {
		return fmt.Errorf("%w: %s-%s", ErrMalformedWindow, *req.StartTime, *req.EndTime)
	}
	return nil
}
