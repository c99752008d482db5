package staff

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StaffingService/internal/domain"
	"github.com/m04kA/SMC-StaffingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffingService/pkg/psqlbuilder"
)

var staffColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"role",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с сотрудниками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает сотрудника по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(staffColumns...).
		From("staff").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	staff, err := scanStaff(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff: %w", ErrScanRow, err)
	}

	return staff, nil
}

// List получает список сотрудников
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(staffColumns...).
		From("staff").
		OrderBy("id")
	if onlyActive {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Staff, 0)
	for rows.Next() {
		staff, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan staff: %w", ErrScanRow, err)
		}
		result = append(result, staff)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %w", ErrExecQuery, err)
	}

	return result, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanStaff(row scanner) (*domain.Staff, error) {
	var staff domain.Staff
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&staff.ID,
		&staff.Name,
		&staff.Email,
		&staff.Phone,
		&staff.Role,
		&staff.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	staff.CreatedAt = createdAt.Time
	staff.UpdatedAt = updatedAt.Time
	return &staff, nil
}
