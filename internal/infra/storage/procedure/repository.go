package procedure

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SalonBookingService/pkg/pgerrors"
	"github.com/m04kA/SalonBookingService/pkg/psqlbuilder"
)

// Repository репозиторий каталога процедур
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория процедур
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает процедуру. Имя уникально.
func (r *Repository) Create(ctx context.Context, p *domain.Procedure) (*domain.Procedure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("procedures").
		Columns("name", "duration_hours").
		Values(p.Name, p.DurationHours).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt, &updatedAt)
	if err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return p, nil
}

// GetByID получает процедуру по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Procedure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "duration_hours", "created_at", "updated_at").
		From("procedures").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Procedure
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID, &p.Name, &p.DurationHours, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrProcedureNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan procedure: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}

// List получает все процедуры каталога
func (r *Repository) List(ctx context.Context) ([]*domain.Procedure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "duration_hours", "created_at", "updated_at").
		From("procedures").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	procedures := make([]*domain.Procedure, 0)

	for rows.Next() {
		var p domain.Procedure
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(&p.ID, &p.Name, &p.DurationHours, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		p.CreatedAt = createdAt.Time
		p.UpdatedAt = updatedAt.Time

		procedures = append(procedures, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return procedures, nil
}
