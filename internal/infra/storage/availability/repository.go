package availability

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-StaffingService/pkg/types"
)

// Repository репозиторий недельных окон доступности персонала (таблица staff_availability)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAvailableByWeekday возвращает окна со статусом available на день недели
// Сотрудники, выключенные из штата (is_active = false), не возвращаются
func (r *Repository) GetAvailableByWeekday(ctx context.Context, day domain.Weekday) ([]domain.StaffAvailabilityWindow, error) {
	query, args, err := psqlbuilder.Select("sa.staff_id", "sa.day_of_week", "sa.start_time", "sa.end_time", "sa.status").
		From("staff_availability sa").
		Join("staff s ON s.id = sa.staff_id").
		Where(squirrel.Eq{
			"sa.day_of_week": string(day),
			"sa.status":      string(domain.AvailabilityAvailable),
			"s.is_active":    true,
		}).
		OrderBy("sa.staff_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailableByWeekday - build select query: %w", ErrBuildQuery, err)
	}

	return r.query(ctx, "GetAvailableByWeekday", query, args)
}

// GetByStaff возвращает все окна сотрудника
func (r *Repository) GetByStaff(ctx context.Context, staffID int64) ([]domain.StaffAvailabilityWindow, error) {
	query, args, err := psqlbuilder.Select("staff_id", "day_of_week", "start_time", "end_time", "status").
		From("staff_availability").
		Where(squirrel.Eq{"staff_id": staffID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStaff - build select query: %w", ErrBuildQuery, err)
	}

	return r.query(ctx, "GetByStaff", query, args)
}

// ReplaceForStaff удаляет окна сотрудника и вставляет новые
// Должен вызываться в транзакции, иначе между удалением и вставкой окна сотрудника пусты
func (r *Repository) ReplaceForStaff(ctx context.Context, staffID int64, windows []domain.StaffAvailabilityWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("staff_availability").
		Where(squirrel.Eq{"staff_id": staffID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForStaff - build delete query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForStaff - execute delete: %w", ErrExecQuery, err)
	}

	if len(windows) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("staff_availability").
		Columns("staff_id", "day_of_week", "start_time", "end_time", "status")
	for _, w := range windows {
		insert = insert.Values(staffID, string(w.DayOfWeek), nullableTime(w.StartTime), nullableTime(w.EndTime), string(w.Status))
	}

	insertQuery, insertArgs, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForStaff - build insert query: %w", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForStaff - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) query(ctx context.Context, method, query string, args []interface{}) ([]domain.StaffAvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, method, err)
	}
	defer rows.Close()

	result := make([]domain.StaffAvailabilityWindow, 0)
	for rows.Next() {
		var w domain.StaffAvailabilityWindow
		var day, status string
		if err := rows.Scan(&w.StaffID, &day, &w.StartTime, &w.EndTime, &status); err != nil {
			return nil, fmt.Errorf("%w: %s - scan window: %w", ErrScanRow, method, err)
		}
		w.DayOfWeek = domain.Weekday(day)
		w.Status = domain.AvailabilityStatus(status)
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %w", ErrExecQuery, method, err)
	}

	return result, nil
}

// nullableTime заблокированные дни хранятся без времени
func nullableTime(t types.TimeString) interface{} {
	if t.IsZero() {
		return nil
	}
	return string(t)
}
