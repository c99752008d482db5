package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/internal/service/assignment/models"
	"github.com/m04kA/SMC-StaffingService/internal/service/conflicts"
)

// UseCase use case для создания бронирования мероприятия или записи на услугу
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
// blockingKinds - виды резервирований, пересечение с которыми запрещает создание бронирования
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

// Execute выполняет use case создания бронирования
// Проверка конфликтов и вставка выполняются в сериализуемой транзакции,
// назначение персонала - после фиксации бронирования и не влияет на его создание
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, type=%s, date=%s, time=%s-%s",
		req.UserID, req.Type, req.Date.Format(domain.DateFormat), req.TimeFrom, req.TimeTo)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не может быть в прошлом
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	status := domain.StatusPending
	if req.Status != nil {
		status, _ = parseInitialStatus(*req.Status)
	}

	var result *domain.Booking

	// 3. Проверка занятости и создание в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if len(uc.blockingKinds) > 0 {
			existing, err := uc.reservationRepo.GetByDate(txCtx, req.Date, uc.blockingKinds)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to get reservations: %v", err)
				return fmt.Errorf("%w: failed to get reservations: %w", ErrInternal, err)
			}

			from, to := req.TimeFrom, req.TimeTo
			found := uc.checker.FindConflicts(conflicts.Candidate{Date: req.Date, From: &from, To: &to}, existing)
			if len(found) > 0 {
				uc.logger.Warn("CreateBooking: %s-%s on %s conflicts with %s id=%d",
					req.TimeFrom, req.TimeTo, req.Date.Format(domain.DateFormat), found[0].Kind, found[0].ID)
				return fmt.Errorf("%w: %s id=%d", ErrSlotConflict, found[0].Kind, found[0].ID)
			}
		}

		booking := &domain.Booking{
			Type:      req.Type,
			Title:     req.Title,
			ServiceID: req.ServiceID,
			Date:      req.Date,
			TimeFrom:  req.TimeFrom,
			TimeTo:    req.TimeTo,
			Status:    status,
			Notes:     req.Notes,
			CreatedBy: req.UserID,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		if uc.metrics != nil && isConflict(err) {
			uc.metrics.ObserveConflict("create_" + string(req.Type))
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created %s id=%d", result.Type, result.ID)

	resp := toResponse(result)

	// 4. Назначение персонала
	assigned, err := uc.assigner.Assign(ctx, &models.AssignRequest{
		ReservationID: result.ID,
		BookingType:   result.Type,
		Date:          result.Date,
		TimeFrom:      result.TimeFrom,
		TimeTo:        result.TimeTo,
	})
	switch {
	case err != nil:
		uc.logger.Error("CreateBooking: staff assignment failed for %s id=%d: %v", result.Type, result.ID, err)
		resp.AssignmentStatus = AssignmentFailed
	case len(assigned.Assigned) == 0:
		resp.AssignmentStatus = AssignmentUnassigned
	default:
		resp.AssignmentStatus = AssignmentAssigned
		resp.AssignedStaff = assigned.Assigned
	}

	return resp, nil
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		Type:          string(b.Type),
		Title:         b.Title,
		ServiceID:     b.ServiceID,
		Date:          b.Date,
		TimeFrom:      b.TimeFrom,
		TimeTo:        b.TimeTo,
		Status:        string(b.Status),
		Notes:         b.Notes,
		CreatedBy:     b.CreatedBy,
		AssignedStaff: []models.AssignedStaff{},
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
