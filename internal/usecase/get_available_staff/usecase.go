package get_available_staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	staffRepo "github.com/m04kA/SMC-StaffingService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-StaffingService/internal/service/availability"
	"github.com/m04kA/SMC-StaffingService/internal/service/conflicts"
)

// UseCase предпросмотр автоматического назначения: кто свободен в интервал
// Ничего не записывает
type UseCase struct {
	availabilityRepo AvailabilityRepository
	staffRepo        StaffRepository
	reservationRepo  ReservationRepository
	checker          ConflictChecker
	blockingKinds    []domain.ReservationKind
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	staffRepo StaffRepository,
	reservationRepo ReservationRepository,
	checker ConflictChecker,
	blockingKinds []domain.ReservationKind,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		staffRepo:        staffRepo,
		reservationRepo:  reservationRepo,
		checker:          checker,
		blockingKinds:    blockingKinds,
		logger:           logger,
	}
}

// Execute выполняет use case получения свободного персонала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableStaff: validation failed: %v", err)
		return nil, err
	}

	weekday := domain.WeekdayOf(req.Date)
	uc.logger.Info("GetAvailableStaff: date=%s (%s), time=%s-%s",
		req.Date.Format(domain.DateFormat), weekday, req.TimeFrom, req.TimeTo)

	// 2. Окна персонала на день недели
	windows, err := uc.availabilityRepo.GetAvailableByWeekday(ctx, weekday)
	if err != nil {
		uc.logger.Error("GetAvailableStaff: failed to get availability for %s: %v", weekday, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	staffIDs := availability.NewIndex(windows).AvailableStaff(weekday, req.TimeFrom, req.TimeTo)

	// 3. Данные сотрудников
	staff := make([]Staff, 0, len(staffIDs))
	for _, id := range staffIDs {
		s, err := uc.staffRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, staffRepo.ErrStaffNotFound) {
				uc.logger.Warn("GetAvailableStaff: staff id=%d not found, skipping", id)
				continue
			}
			uc.logger.Error("GetAvailableStaff: failed to get staff id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		staff = append(staff, Staff{ID: s.ID, Name: s.Name, Role: s.Role})
	}

	// 4. Блокирующие резервирования на интервал
	blocked := false
	if len(uc.blockingKinds) > 0 {
		existing, err := uc.reservationRepo.GetByDate(ctx, req.Date, uc.blockingKinds)
		if err != nil {
			uc.logger.Error("GetAvailableStaff: failed to get reservations: %v", err)
			return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}
		from, to := req.TimeFrom, req.TimeTo
		blocked = uc.checker.HasConflict(conflicts.Candidate{Date: req.Date, From: &from, To: &to}, existing)
	}

	uc.logger.Info("GetAvailableStaff: found %d staff, blocked=%t", len(staff), blocked)

	return &Response{
		Date:     req.Date,
		Weekday:  weekday.String(),
		TimeFrom: req.TimeFrom,
		TimeTo:   req.TimeTo,
		Blocked:  blocked,
		Staff:    staff,
	}, nil
}
