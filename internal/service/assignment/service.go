package assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	staffRepo "github.com/m04kA/SMC-StaffingService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-StaffingService/internal/integrations/notificationservice"
	"github.com/m04kA/SMC-StaffingService/internal/service/assignment/models"
	"github.com/m04kA/SMC-StaffingService/internal/service/availability"
)

// Service автоматическое назначение персонала на бронирования
// Назначаются только сотрудники, чьё недельное окно полностью покрывает время бронирования.
// Если подходящих сотрудников нет, бронирование остаётся без персонала.
type Service struct {
	availabilityRepo AvailabilityRepository
	staffRepo        StaffRepository
	assignmentRepo   AssignmentRepository
	notifier         NotificationClient
	txManager        TransactionManager
	metrics          MetricsCollector
	logger           Logger
}

// NewService создает новый экземпляр сервиса назначений
// metrics может быть nil
func NewService(
	availabilityRepo AvailabilityRepository,
	staffRepo StaffRepository,
	assignmentRepo AssignmentRepository,
	notifier NotificationClient,
	txManager TransactionManager,
	metrics MetricsCollector,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		staffRepo:        staffRepo,
		assignmentRepo:   assignmentRepo,
		notifier:         notifier,
		txManager:        txManager,
		metrics:          metrics,
		logger:           logger,
	}
}

// Assign назначает персонал на только что созданное бронирование
func (s *Service) Assign(ctx context.Context, req *models.AssignRequest) (*models.Result, error) {
	return s.assign(ctx, "Assign", req, false)
}

// Reassign удаляет прежние назначения бронирования и рассчитывает их заново
// Удаление и расчёт выполняются в одной транзакции
func (s *Service) Reassign(ctx context.Context, req *models.AssignRequest) (*models.Result, error) {
	return s.assign(ctx, "Reassign", req, true)
}

// GetAssignedStaff возвращает текущие назначения бронирования
func (s *Service) GetAssignedStaff(ctx context.Context, bookingType domain.BookingType, reservationID int64) ([]models.AssignedStaff, error) {
	if !bookingType.IsValid() || reservationID <= 0 {
		return nil, fmt.Errorf("%w: booking type %q, id=%d", ErrInvalidInput, bookingType, reservationID)
	}

	items, err := s.assignmentRepo.GetByReservation(ctx, bookingType, reservationID)
	if err != nil {
		s.logger.Error("GetAssignedStaff: repository error for %s id=%d: %v", bookingType, reservationID, err)
		return nil, fmt.Errorf("%w: GetAssignedStaff - repository error: %v", ErrInternal, err)
	}

	result := models.FromDomainAssignedStaff(items)
	for i := range result {
		staff, err := s.staffRepo.GetByID(ctx, result[i].StaffID)
		if err != nil {
			if errors.Is(err, staffRepo.ErrStaffNotFound) {
				continue
			}
			return nil, fmt.Errorf("%w: GetAssignedStaff - staff lookup: %v", ErrInternal, err)
		}
		result[i].Name = staff.Name
	}

	return result, nil
}

func (s *Service) assign(ctx context.Context, method string, req *models.AssignRequest, retract bool) (*models.Result, error) {
	if err := validateRequest(req); err != nil {
		s.logger.Warn("%s: invalid request: %v", method, err)
		return nil, err
	}

	day := domain.WeekdayOf(req.Date)
	s.logger.Info("%s: computing staff for %s id=%d on %s (%s) %s-%s",
		method, req.BookingType, req.ReservationID, req.Date.Format(domain.DateFormat), day, req.TimeFrom, req.TimeTo)

	result := &models.Result{
		ReservationID: req.ReservationID,
		BookingType:   string(req.BookingType),
		Date:          req.Date.Format(domain.DateFormat),
		Weekday:       day.String(),
		Assigned:      []models.AssignedStaff{},
	}
	var recipients []notificationservice.Recipient

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		result.Retracted = 0
		result.Assigned = []models.AssignedStaff{}
		recipients = nil

		if retract {
			deleted, err := s.assignmentRepo.DeleteByReservation(ctx, req.BookingType, req.ReservationID)
			if err != nil {
				return fmt.Errorf("retract assignments: %w", err)
			}
			result.Retracted = deleted
		}

		windows, err := s.availabilityRepo.GetAvailableByWeekday(ctx, day)
		if err != nil {
			return fmt.Errorf("load availability: %w", err)
		}

		candidates := availability.NewIndex(windows).AvailableStaff(day, req.TimeFrom, req.TimeTo)
		if len(candidates) == 0 {
			return nil
		}

		items := make([]domain.AssignedStaff, 0, len(candidates))
		staffByID := make(map[int64]*domain.Staff, len(candidates))
		for _, staffID := range candidates {
			staff, err := s.staffRepo.GetByID(ctx, staffID)
			if err != nil {
				if errors.Is(err, staffRepo.ErrStaffNotFound) {
					s.logger.Warn("%s: staff id=%d not found, skipping", method, staffID)
					continue
				}
				return fmt.Errorf("lookup staff %d: %w", staffID, err)
			}

			item, err := domain.NewAssignedStaff(staff.ID, req.BookingType, req.ReservationID, staff.Role)
			if err != nil {
				return err
			}
			items = append(items, item)
			staffByID[staff.ID] = staff
		}

		if len(items) == 0 {
			return nil
		}

		created, err := s.assignmentRepo.CreateBatch(ctx, items)
		if err != nil {
			return fmt.Errorf("create assignments: %w", err)
		}

		for _, item := range created {
			staff := staffByID[item.StaffID]
			result.Assigned = append(result.Assigned, models.AssignedStaff{
				ID:           item.ID,
				StaffID:      item.StaffID,
				Name:         staff.Name,
				AssignedRole: item.AssignedRole,
			})
			recipients = append(recipients, notificationservice.Recipient{
				StaffID: staff.ID,
				Name:    staff.Name,
				Email:   staff.Email,
				Phone:   staff.Phone,
				Role:    item.AssignedRole,
			})
		}

		return nil
	})
	if err != nil {
		s.logger.Error("%s: failed for %s id=%d: %v", method, req.BookingType, req.ReservationID, err)
		return nil, fmt.Errorf("%w: %s - %w", ErrInternal, method, err)
	}

	if s.metrics != nil {
		s.metrics.ObserveAssignment(string(req.BookingType), len(result.Assigned))
	}

	if len(recipients) == 0 {
		s.logger.Warn("%s: no eligible staff for %s id=%d on %s %s-%s",
			method, req.BookingType, req.ReservationID, day, req.TimeFrom, req.TimeTo)
		return result, nil
	}

	s.notify(ctx, method, req, recipients)

	s.logger.Info("%s: assigned %d staff to %s id=%d (retracted %d)",
		method, len(result.Assigned), req.BookingType, req.ReservationID, result.Retracted)
	return result, nil
}

// notify отправляет одно уведомление всем назначенным; ошибка доставки не отменяет назначение
func (s *Service) notify(ctx context.Context, method string, req *models.AssignRequest, recipients []notificationservice.Recipient) {
	notification := &notificationservice.StaffAssignedNotification{
		ReservationID: req.ReservationID,
		BookingType:   string(req.BookingType),
		Date:          req.Date.Format(domain.DateFormat),
		TimeFrom:      req.TimeFrom.String(),
		TimeTo:        req.TimeTo.String(),
		Recipients:    recipients,
	}

	if err := s.notifier.NotifyStaffAssigned(ctx, notification); err != nil {
		s.logger.Error("%s: failed to queue notification for %s id=%d: %v", method, req.BookingType, req.ReservationID, err)
	}
}

func validateRequest(req *models.AssignRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservation id must be positive", ErrInvalidInput)
	}
	if !req.BookingType.IsValid() {
		return fmt.Errorf("%w: booking type %q", ErrInvalidInput, req.BookingType)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.TimeFrom.Validate(); err != nil {
		return fmt.Errorf("%w: time from: %v", ErrInvalidInput, err)
	}
	if err := req.TimeTo.Validate(); err != nil {
		return fmt.Errorf("%w: time to: %v", ErrInvalidInput, err)
	}
	if req.TimeFrom.IsAfter(req.TimeTo) {
		return fmt.Errorf("%w: %s-%s", ErrMalformedWindow, req.TimeFrom, req.TimeTo)
	}
	return nil
}
