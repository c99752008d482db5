package assignment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffingService/pkg/psqlbuilder"
)

// Repository репозиторий назначений персонала (таблица assigned_staff)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория назначений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch создает назначения одним INSERT и возвращает их с присвоенными ID
func (r *Repository) CreateBatch(ctx context.Context, items []domain.AssignedStaff) ([]domain.AssignedStaff, error) {
	if len(items) == 0 {
		return []domain.AssignedStaff{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("assigned_staff").
		Columns("staff_id", "booking_id", "service_booking_id", "booking_type", "assigned_role")
	for _, item := range items {
		insert = insert.Values(item.StaffID, item.BookingID, item.ServiceBookingID, string(item.BookingType), item.AssignedRole)
	}

	query, args, err := insert.Suffix("RETURNING id, created_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - build insert query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - execute insert: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	// PostgreSQL возвращает строки RETURNING в порядке VALUES
	result := make([]domain.AssignedStaff, 0, len(items))
	for i := 0; rows.Next(); i++ {
		if i >= len(items) {
			return nil, fmt.Errorf("%w: CreateBatch - unexpected returned row", ErrScanRow)
		}
		item := items[i]
		var createdAt sql.NullTime
		if err := rows.Scan(&item.ID, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: CreateBatch - scan id: %w", ErrScanRow, err)
		}
		item.CreatedAt = createdAt.Time
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - rows iteration: %w", ErrExecQuery, err)
	}

	return result, nil
}

// DeleteByReservation удаляет все назначения бронирования и возвращает количество удалённых
func (r *Repository) DeleteByReservation(ctx context.Context, bookingType domain.BookingType, reservationID int64) (int64, error) {
	where, err := reservationFilter(bookingType, reservationID)
	if err != nil {
		return 0, err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("assigned_staff").Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByReservation - build delete query: %w", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByReservation - execute delete: %w", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByReservation - rows affected: %w", ErrExecQuery, err)
	}
	return affected, nil
}

// GetByReservation возвращает назначения бронирования
func (r *Repository) GetByReservation(ctx context.Context, bookingType domain.BookingType, reservationID int64) ([]domain.AssignedStaff, error) {
	where, err := reservationFilter(bookingType, reservationID)
	if err != nil {
		return nil, err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"staff_id",
		"booking_id",
		"service_booking_id",
		"booking_type",
		"assigned_role",
		"created_at",
	).
		From("assigned_staff").
		Where(where).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservation - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservation - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.AssignedStaff, 0)
	for rows.Next() {
		item, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByReservation - scan assignment: %w", ErrScanRow, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByReservation - rows iteration: %w", ErrExecQuery, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAssignment роль может быть NULL в строках, созданных без снимка роли
func scanAssignment(row rowScanner) (domain.AssignedStaff, error) {
	var item domain.AssignedStaff
	var bookingTypeValue string
	var role sql.NullString
	var createdAt sql.NullTime

	err := row.Scan(
		&item.ID,
		&item.StaffID,
		&item.BookingID,
		&item.ServiceBookingID,
		&bookingTypeValue,
		&role,
		&createdAt,
	)
	if err != nil {
		return domain.AssignedStaff{}, err
	}

	item.BookingType = domain.BookingType(bookingTypeValue)
	item.AssignedRole = role.String
	item.CreatedAt = createdAt.Time
	return item, nil
}

// reservationFilter условие по колонке ссылки, соответствующей типу бронирования
func reservationFilter(bookingType domain.BookingType, reservationID int64) (squirrel.Eq, error) {
	switch bookingType {
	case domain.BookingTypeEvent:
		return squirrel.Eq{"booking_id": reservationID, "booking_type": string(bookingType)}, nil
	case domain.BookingTypeService:
		return squirrel.Eq{"service_booking_id": reservationID, "booking_type": string(bookingType)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidBookingType, bookingType)
	}
}
