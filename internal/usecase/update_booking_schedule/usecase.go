package update_booking_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-StaffingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-StaffingService/internal/service/assignment/models"
	"github.com/m04kA/SMC-StaffingService/internal/service/conflicts"
)

// UseCase use case переноса бронирования на новую дату и время
// После переноса прежние назначения персонала удаляются и рассчитываются заново
type UseCase struct {
	bookingRepo     BookingRepository
	reservationRepo ReservationRepository
	checker         ConflictChecker
	assigner        AssignmentService
	txManager       TransactionManager
	blockingKinds   []domain.ReservationKind
	metrics         MetricsCollector
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	reservationRepo ReservationRepository,
	checker ConflictChecker,
	assigner AssignmentService,
	txManager TransactionManager,
	blockingKinds []domain.ReservationKind,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		reservationRepo: reservationRepo,
		checker:         checker,
		assigner:        assigner,
		txManager:       txManager,
		blockingKinds:   blockingKinds,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет перенос бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingSchedule: user=%d, %s id=%d -> date=%s, time=%s-%s",
		req.UserID, req.Type, req.BookingID, req.Date.Format(domain.DateFormat), req.TimeFrom, req.TimeTo)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBookingSchedule: validation failed: %v", err)
		return nil, err
	}

	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("UpdateBookingSchedule: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	var booking *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.bookingRepo.GetByID(txCtx, req.Type, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		if !current.CanBeRescheduled() {
			return fmt.Errorf("%w: status %s", ErrCannotReschedule, current.Status)
		}

		if len(uc.blockingKinds) > 0 {
			existing, err := uc.reservationRepo.GetByDate(txCtx, req.Date, uc.blockingKinds)
			if err != nil {
				return fmt.Errorf("%w: failed to get reservations: %w", ErrInternal, err)
			}

			from, to := req.TimeFrom, req.TimeTo
			candidate := conflicts.Candidate{
				Date:    req.Date,
				From:    &from,
				To:      &to,
				Exclude: &domain.ReservationRef{Kind: req.Type.ReservationKind(), ID: req.BookingID},
			}
			if found := uc.checker.FindConflicts(candidate, existing); len(found) > 0 {
				return fmt.Errorf("%w: %s id=%d", ErrSlotConflict, found[0].Kind, found[0].ID)
			}
		}

		if err := uc.bookingRepo.UpdateSchedule(txCtx, req.Type, req.BookingID, req.Date, req.TimeFrom, req.TimeTo); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		current.Date = req.Date
		current.TimeFrom = req.TimeFrom
		current.TimeTo = req.TimeTo
		booking = current
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotConflict):
			uc.logger.Warn("UpdateBookingSchedule: %v", err)
			if uc.metrics != nil {
				uc.metrics.ObserveConflict("reschedule_" + string(req.Type))
			}
		case errors.Is(err, ErrInternal):
			uc.logger.Error("UpdateBookingSchedule: %v", err)
		default:
			uc.logger.Warn("UpdateBookingSchedule: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("UpdateBookingSchedule: %s id=%d rescheduled", req.Type, req.BookingID)

	resp := &Response{
		ID:            booking.ID,
		Type:          string(booking.Type),
		Title:         booking.Title,
		Date:          booking.Date,
		TimeFrom:      booking.TimeFrom,
		TimeTo:        booking.TimeTo,
		Status:        string(booking.Status),
		AssignedStaff: []models.AssignedStaff{},
	}

	result, err := uc.assigner.Reassign(ctx, &models.AssignRequest{
		ReservationID: booking.ID,
		BookingType:   booking.Type,
		Date:          booking.Date,
		TimeFrom:      booking.TimeFrom,
		TimeTo:        booking.TimeTo,
	})
	switch {
	case err != nil:
		uc.logger.Error("UpdateBookingSchedule: staff reassignment failed for %s id=%d: %v", booking.Type, booking.ID, err)
		resp.AssignmentStatus = AssignmentFailed
	case len(result.Assigned) == 0:
		resp.AssignmentStatus = AssignmentUnassigned
		resp.RetractedCount = result.Retracted
	default:
		resp.AssignmentStatus = AssignmentAssigned
		resp.RetractedCount = result.Retracted
		resp.AssignedStaff = result.Assigned
	}

	return resp, nil
}
