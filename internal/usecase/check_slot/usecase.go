package check_slot

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/internal/service/conflicts"
)

// UseCase проверка слота календаря на пересечение с существующими резервированиями
type UseCase struct {
	reservationRepo ReservationRepository
	checker         ConflictChecker
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, checker ConflictChecker, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		checker:         checker,
		logger:          logger,
	}
}

// Execute выполняет проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckSlot: validation failed: %v", err)
		return nil, err
	}

	existing, err := uc.reservationRepo.GetByDate(ctx, req.Date, req.Kinds)
	if err != nil {
		uc.logger.Error("CheckSlot: failed to get reservations for %s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	found := uc.checker.FindConflicts(conflicts.Candidate{
		Date:    req.Date,
		From:    req.TimeFrom,
		To:      req.TimeTo,
		Exclude: req.Exclude,
	}, existing)

	uc.logger.Info("CheckSlot: date=%s, checked=%d, conflicts=%d", req.Date.Format(domain.DateFormat), len(existing), len(found))

	return &Response{Conflict: len(found) > 0, Conflicts: found}, nil
}

func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	for _, kind := range req.Kinds {
		if !kind.IsValid() {
			return fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, kind)
		}
	}
	if req.Exclude != nil && (!req.Exclude.Kind.IsValid() || req.Exclude.ID <= 0) {
		return fmt.Errorf("%w: invalid exclude reference", ErrInvalidInput)
	}
	if (req.TimeFrom == nil) != (req.TimeTo == nil) {
		return fmt.Errorf("%w: timeFrom and timeTo must be set together", ErrInvalidInput)
	}
	if req.TimeFrom == nil {
		return nil
	}
	if err := req.TimeFrom.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeFrom format: %v", ErrInvalidInput, err)
	}
	if err := req.TimeTo.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeTo format: %v", ErrInvalidInput, err)
	}
	if !req.TimeFrom.IsBefore(*req.TimeTo) {
		return fmt.Errorf("%w: %s-%s", ErrMalformedWindow, *req.TimeFrom, *req.TimeTo)
	}
	return nil
}
