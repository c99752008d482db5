package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	staffRepo "github.com/m04kA/SMC-StaffingService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-StaffingService/internal/service/staff/models"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

// BusinessHours окно рабочих часов по умолчанию
type BusinessHours struct {
	Start types.TimeString
	End   types.TimeString
}

// Service сервис недельного расписания сотрудников
type Service struct {
	staffRepo        StaffRepository
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	defaults         BusinessHours
	logger           Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	staffRepo StaffRepository,
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	defaults BusinessHours,
	logger Logger,
) *Service {
	return &Service{
		staffRepo:        staffRepo,
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		defaults:         defaults,
		logger:           logger,
	}
}

// SaveWeeklyAvailability полностью заменяет недельное расписание сотрудника
// Всегда сохраняется семь окон: дни без явных настроек получают рабочие часы по умолчанию
func (s *Service) SaveWeeklyAvailability(ctx context.Context, staffID int64, req *models.SaveWeeklyAvailabilityRequest) (*models.WeeklyAvailabilityResponse, error) {
	s.logger.Info("SaveWeeklyAvailability: saving schedule for staff=%d", staffID)

	if staffID <= 0 || req == nil {
		return nil, fmt.Errorf("%w: staff id and request are required", ErrInvalidInput)
	}

	windows, err := s.buildWeek(staffID, req.Days)
	if err != nil {
		s.logger.Warn("SaveWeeklyAvailability: invalid schedule for staff=%d: %v", staffID, err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
			return err
		}
		return s.availabilityRepo.ReplaceForStaff(ctx, staffID, windows)
	})
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			s.logger.Warn("SaveWeeklyAvailability: staff=%d not found", staffID)
			return nil, ErrStaffNotFound
		}
		s.logger.Error("SaveWeeklyAvailability: failed for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: SaveWeeklyAvailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SaveWeeklyAvailability: saved %d windows for staff=%d", len(windows), staffID)
	return models.FromDomainWindows(staffID, windows), nil
}

// GetWeeklyAvailability возвращает недельное расписание сотрудника
func (s *Service) GetWeeklyAvailability(ctx context.Context, staffID int64) (*models.WeeklyAvailabilityResponse, error) {
	if staffID <= 0 {
		return nil, fmt.Errorf("%w: staff id must be positive", ErrInvalidInput)
	}

	if _, err := s.staffRepo.GetByID(ctx, staffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("%w: GetWeeklyAvailability - staff lookup: %v", ErrInternal, err)
	}

	windows, err := s.availabilityRepo.GetByStaff(ctx, staffID)
	if err != nil {
		s.logger.Error("GetWeeklyAvailability: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetWeeklyAvailability - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainWindows(staffID, windows), nil
}

// ListStaff возвращает сотрудников, onlyActive отбрасывает деактивированных
func (s *Service) ListStaff(ctx context.Context, onlyActive bool) (*models.StaffListResponse, error) {
	items, err := s.staffRepo.List(ctx, onlyActive)
	if err != nil {
		s.logger.Error("ListStaff: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListStaff - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainStaffList(items), nil
}

// buildWeek строит семь окон из переопределений и рабочих часов по умолчанию
func (s *Service) buildWeek(staffID int64, days []models.DayAvailability) ([]domain.StaffAvailabilityWindow, error) {
	overrides := make(map[domain.Weekday]models.DayAvailability, len(days))
	for _, d := range days {
		day, err := domain.ParseWeekday(d.Day)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown day %q", ErrInvalidInput, d.Day)
		}
		if _, dup := overrides[day]; dup {
			return nil, fmt.Errorf("%w: day %s specified twice", ErrInvalidInput, day)
		}
		overrides[day] = d
	}

	windows := make([]domain.StaffAvailabilityWindow, 0, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		w := domain.StaffAvailabilityWindow{
			StaffID:   staffID,
			DayOfWeek: day,
			StartTime: s.defaults.Start,
			EndTime:   s.defaults.End,
			Status:    domain.AvailabilityAvailable,
		}

		if override, ok := overrides[day]; ok {
			if err := applyOverride(&w, override); err != nil {
				return nil, err
			}
		}

		windows = append(windows, w)
	}

	return windows, nil
}

func applyOverride(w *domain.StaffAvailabilityWindow, override models.DayAvailability) error {
	if override.Status != nil {
		status := domain.AvailabilityStatus(*override.Status)
		if !status.IsValid() {
			return fmt.Errorf("%w: unknown status %q for %s", ErrInvalidInput, *override.Status, w.DayOfWeek)
		}
		w.Status = status
	}

	// Время недоступных дней матчером не учитывается и не хранится
	if !w.IsAvailable() {
		w.StartTime = ""
		w.EndTime = ""
		return nil
	}

	if override.StartTime != nil {
		start, err := types.NewTimeStringFromString(*override.StartTime)
		if err != nil {
			return fmt.Errorf("%w: start time for %s: %v", ErrInvalidInput, w.DayOfWeek, err)
		}
		w.StartTime = start
	}
	if override.EndTime != nil {
		end, err := types.NewTimeStringFromString(*override.EndTime)
		if err != nil {
			return fmt.Errorf("%w: end time for %s: %v", ErrInvalidInput, w.DayOfWeek, err)
		}
		w.EndTime = end
	}

	if !w.StartTime.IsBefore(w.EndTime) {
		return fmt.Errorf("%w: %s %s-%s", ErrInvalidTimeRange, w.DayOfWeek, w.StartTime, w.EndTime)
	}
	return nil
}
