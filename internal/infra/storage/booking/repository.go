package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

// Repository репозиторий для работы с бронированиями мероприятий (bookings)
// и записями на услуги (service_bookings)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование в таблице, соответствующей типу
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	table, err := tableFor(booking.Type)
	if err != nil {
		return nil, err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := []string{"title", "booking_date", "time_from", "time_to", "status", "notes", "created_by"}
	values := []interface{}{
		booking.Title,
		booking.Date,
		string(booking.TimeFrom),
		string(booking.TimeTo),
		string(booking.Status),
		booking.Notes,
		booking.CreatedBy,
	}
	if booking.Type == domain.BookingTypeService {
		columns = append(columns, "service_id")
		values = append(values, booking.ServiceID)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по типу и ID
func (r *Repository) GetByID(ctx context.Context, bookingType domain.BookingType, id int64) (*domain.Booking, error) {
	table, err := tableFor(bookingType)
	if err != nil {
		return nil, err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	serviceColumn := "NULL::bigint AS service_id"
	if bookingType == domain.BookingTypeService {
		serviceColumn = "service_id"
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"title",
		serviceColumn,
		"booking_date",
		"time_from",
		"time_to",
		"status",
		"notes",
		"created_by",
		"created_at",
		"updated_at",
	).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	booking := domain.Booking{Type: bookingType}
	var status string
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.Title,
		&booking.ServiceID,
		&booking.Date,
		&booking.TimeFrom,
		&booking.TimeTo,
		&status,
		&booking.Notes,
		&booking.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	booking.Status = domain.BookingStatus(status)
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// UpdateSchedule переносит бронирование на новую дату и время
func (r *Repository) UpdateSchedule(ctx context.Context, bookingType domain.BookingType, id int64, date time.Time, from, to types.TimeString) error {
	table, err := tableFor(bookingType)
	if err != nil {
		return err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("booking_date", date).
		Set("time_from", string(from)).
		Set("time_to", string(to)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %w", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - execute update: %w", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, bookingType domain.BookingType, id int64, status domain.BookingStatus) error {
	table, err := tableFor(bookingType)
	if err != nil {
		return err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %w", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func tableFor(bookingType domain.BookingType) (string, error) {
	switch bookingType {
	case domain.BookingTypeEvent:
		return "bookings", nil
	case domain.BookingTypeService:
		return "service_bookings", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidBookingType, bookingType)
	}
}
