package listing

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SalonBookingService/pkg/psqlbuilder"
)

// Repository репозиторий прайс-листа мастеров (master_procedures)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория прайс-листа
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает позицию прайс-листа либо обновляет цену существующей.
// Мастер предлагает процедуру не более одного раза, цена мутабельна.
func (r *Repository) Upsert(ctx context.Context, l *domain.MasterListing) (*domain.MasterListing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("master_procedures").
		Columns("master_id", "procedure_id", "price").
		Values(l.MasterID, l.ProcedureID, l.Price).
		Suffix("ON CONFLICT (master_id, procedure_id) DO UPDATE SET price = EXCLUDED.price, updated_at = NOW()").
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	l.CreatedAt = createdAt.Time
	l.UpdatedAt = updatedAt.Time

	return l, nil
}

// GetByMasterAndProcedure получает позицию прайс-листа по паре идентификаторов
func (r *Repository) GetByMasterAndProcedure(ctx context.Context, masterID, procedureID int64) (*domain.MasterListing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"mp.master_id",
		"mp.procedure_id",
		"mp.price",
		"p.name",
		"p.duration_hours",
		"mp.created_at",
		"mp.updated_at",
	).
		From("master_procedures mp").
		Join("procedures p ON p.id = mp.procedure_id").
		Where(squirrel.Eq{"mp.master_id": masterID, "mp.procedure_id": procedureID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMasterAndProcedure - build select query: %v", ErrBuildQuery, err)
	}

	l, err := scanListing(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByMasterAndProcedure - scan listing: %v", ErrScanRow, err)
	}

	return l, nil
}

// ListByMaster получает прайс-лист мастера с данными процедур
func (r *Repository) ListByMaster(ctx context.Context, masterID int64) ([]*domain.MasterListing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"mp.master_id",
		"mp.procedure_id",
		"mp.price",
		"p.name",
		"p.duration_hours",
		"mp.created_at",
		"mp.updated_at",
	).
		From("master_procedures mp").
		Join("procedures p ON p.id = mp.procedure_id").
		Where(squirrel.Eq{"mp.master_id": masterID}).
		OrderBy("p.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByMaster - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByMaster - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	listings := make([]*domain.MasterListing, 0)

	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByMaster - scan row: %v", ErrScanRow, err)
		}
		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByMaster - rows error: %v", ErrScanRow, err)
	}

	return listings, nil
}

// Delete удаляет позицию прайс-листа
func (r *Repository) Delete(ctx context.Context, masterID, procedureID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("master_procedures").
		Where(squirrel.Eq{"master_id": masterID, "procedure_id": procedureID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrListingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanListing(row rowScanner) (*domain.MasterListing, error) {
	var l domain.MasterListing
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&l.MasterID,
		&l.ProcedureID,
		&l.Price,
		&l.ProcedureName,
		&l.ProcedureDuration,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	l.CreatedAt = createdAt.Time
	l.UpdatedAt = updatedAt.Time

	return &l, nil
}
