package reservation

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

// source таблица, хранящая резервирования одного вида
type source struct {
	table      string
	dateColumn string
	fromColumn string
	toColumn   string
	// statusExpr блокировки не имеют статуса и всегда активны
	statusExpr string
}

var sources = map[domain.ReservationKind]source{
	domain.KindEventBooking:   {table: "bookings", dateColumn: "booking_date", fromColumn: "time_from", toColumn: "time_to", statusExpr: "status"},
	domain.KindServiceBooking: {table: "service_bookings", dateColumn: "booking_date", fromColumn: "time_from", toColumn: "time_to", statusExpr: "status"},
	domain.KindAppointment:    {table: "appointments", dateColumn: "appointment_date", fromColumn: "time_from", toColumn: "time_to", statusExpr: "status"},
	domain.KindBlockedDate:    {table: "blocked_dates", dateColumn: "blocked_date", fromColumn: "start_time", toColumn: "end_time", statusExpr: "'reserved' AS status"},
}

// Repository читает занятость календаря из всех таблиц резервирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate возвращает резервирования указанных видов на дату (включая отменённые)
// Пустой kinds означает все виды
func (r *Repository) GetByDate(ctx context.Context, date time.Time, kinds []domain.ReservationKind) ([]domain.ReservationWindow, error) {
	if len(kinds) == 0 {
		kinds = domain.ReservationKinds
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)
	result := make([]domain.ReservationWindow, 0)

	for _, kind := range kinds {
		query, args, err := buildDateQuery(kind, date)
		if err != nil {
			return nil, err
		}

		windows, err := r.queryWindows(ctx, executor, kind, query, args)
		if err != nil {
			return nil, err
		}
		result = append(result, windows...)
	}

	return result, nil
}

// CreateBlockedDate создает блокировку даты
func (r *Repository) CreateBlockedDate(ctx context.Context, blocked *domain.BlockedDate) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("blocked_date", "start_time", "end_time", "reason", "created_by").
		Values(blocked.Date, timeValue(blocked.StartTime), timeValue(blocked.EndTime), blocked.Reason, blocked.CreatedBy).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedDate - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&blocked.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedDate - execute insert: %w", ErrExecQuery, err)
	}
	blocked.CreatedAt = createdAt.Time

	return blocked, nil
}

func (r *Repository) queryWindows(ctx context.Context, executor DBExecutor, kind domain.ReservationKind, query string, args []interface{}) ([]domain.ReservationWindow, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query for %s: %w", ErrExecQuery, kind, err)
	}
	defer rows.Close()

	result := make([]domain.ReservationWindow, 0)
	for rows.Next() {
		w := domain.ReservationWindow{Kind: kind}
		var from, to types.TimeString
		var status string
		if err := rows.Scan(&w.ID, &w.Date, &from, &to, &status); err != nil {
			return nil, fmt.Errorf("%w: GetByDate - scan %s: %w", ErrScanRow, kind, err)
		}
		if !from.IsZero() && !to.IsZero() {
			w.TimeFrom = &from
			w.TimeTo = &to
		}
		w.Status = domain.BookingStatus(status)
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDate - rows iteration for %s: %w", ErrExecQuery, kind, err)
	}

	return result, nil
}

func buildDateQuery(kind domain.ReservationKind, date time.Time) (string, []interface{}, error) {
	src, ok := sources[kind]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	query, args, err := psqlbuilder.Select("id", src.dateColumn, src.fromColumn, src.toColumn, src.statusExpr).
		From(src.table).
		Where(squirrel.Eq{src.dateColumn: date.Format(domain.DateFormat)}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: GetByDate - build select query for %s: %w", ErrBuildQuery, kind, err)
	}
	return query, args, nil
}

func timeValue(t *types.TimeString) interface{} {
	if t == nil {
		return nil
	}
	return string(*t)
}
