package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StaffingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StaffingService/internal/service/bookings/models"
)

// Service сервис для чтения и отмены бронирований
type Service struct {
	bookingRepo       BookingRepository
	assignmentRepo    AssignmentRepository
	assignmentService AssignmentService
	txManager         TransactionManager
	logger            Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	assignmentRepo AssignmentRepository,
	assignmentService AssignmentService,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:       bookingRepo,
		assignmentRepo:    assignmentRepo,
		assignmentService: assignmentService,
		txManager:         txManager,
		logger:            logger,
	}
}

// GetByID получает бронирование по типу и ID вместе с назначенным персоналом
func (s *Service) GetByID(ctx context.Context, bookingType domain.BookingType, id int64) (*models.BookingResponse, error) {
	if !bookingType.IsValid() || id <= 0 {
		return nil, fmt.Errorf("%w: booking type %q, id=%d", ErrInvalidInput, bookingType, id)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingType, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: %s id=%d not found", bookingType, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for %s id=%d: %v", bookingType, id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	staff, err := s.assignmentService.GetAssignedStaff(ctx, bookingType, id)
	if err != nil {
		s.logger.Error("GetByID: failed to load assigned staff for %s id=%d: %v", bookingType, id, err)
		return nil, fmt.Errorf("%w: GetByID - assigned staff: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, staff), nil
}

// Cancel отменяет бронирование и снимает назначенный персонал
// Отменённое бронирование больше не занимает календарь
func (s *Service) Cancel(ctx context.Context, bookingType domain.BookingType, id int64, userID int64) (*models.CancelResult, error) {
	s.logger.Info("Cancel: cancelling %s id=%d by user=%d", bookingType, id, userID)

	if !bookingType.IsValid() || id <= 0 {
		return nil, fmt.Errorf("%w: booking type %q, id=%d", ErrInvalidInput, bookingType, id)
	}

	var retracted int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.bookingRepo.GetByID(ctx, bookingType, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - get booking: %w", ErrInternal, err)
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: %s id=%d cannot be cancelled, status=%s", bookingType, id, booking.Status)
			return ErrCannotCancel
		}

		if err := s.bookingRepo.UpdateStatus(ctx, bookingType, id, domain.StatusCancelled); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - update status: %w", ErrInternal, err)
		}

		retracted, err = s.assignmentRepo.DeleteByReservation(ctx, bookingType, id)
		if err != nil {
			return fmt.Errorf("%w: Cancel - retract assignments: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrBookingNotFound) && !errors.Is(err, ErrCannotCancel) {
			s.logger.Error("Cancel: failed for %s id=%d: %v", bookingType, id, err)
		}
		return nil, err
	}

	s.logger.Info("Cancel: cancelled %s id=%d, retracted %d assignment(s)", bookingType, id, retracted)
	return &models.CancelResult{
		ID:             id,
		Type:           string(bookingType),
		Status:         string(domain.StatusCancelled),
		RetractedCount: retracted,
	}, nil
}
