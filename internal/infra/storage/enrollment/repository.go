package enrollment

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

// Repository репозиторий журнала записей (user_procedures)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindOrCreate возвращает существующую запись по тройке
// (user_id, master_id, procedure_id) либо создает новую.
// Дубликат исключён уникальным ограничением на тройку: два конкурентных
// первых бронирования упираются в констрейнт, а не в логику приложения.
// INSERT .. ON CONFLICT DO NOTHING ничего не возвращает при конфликте,
// поэтому вторым шагом строка дочитывается обычным SELECT.
func (r *Repository) FindOrCreate(ctx context.Context, userID, masterID, procedureID int64) (*domain.Enrollment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("user_procedures").
		Columns("user_id", "master_id", "procedure_id").
		Values(userID, masterID, procedureID).
		Suffix("ON CONFLICT (user_id, master_id, procedure_id) DO NOTHING").
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOrCreate - build insert query: %v", ErrBuildQuery, err)
	}

	enrollment := &domain.Enrollment{
		UserID:      userID,
		MasterID:    masterID,
		ProcedureID: procedureID,
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&enrollment.ID, &createdAt)
	if err == nil {
		enrollment.CreatedAt = createdAt.Time
		return enrollment, nil
	}
	if err != sql.ErrNoRows {
		// Конфликт сериализации сохраняем в цепочке - его повторяет txmanager
		if pgerrors.IsSerializationFailure(err) {
			return nil, fmt.Errorf("FindOrCreate - serialization conflict: %w", err)
		}
		return nil, fmt.Errorf("%w: FindOrCreate - execute insert: %v", ErrExecQuery, err)
	}

	// Запись уже существовала - читаем её
	return r.getByTriple(ctx, userID, masterID, procedureID)
}

// Delete удаляет запись по тройке. Используется явной отменой записи
// пользователем; на историю бронирований не влияет.
func (r *Repository) Delete(ctx context.Context, userID, masterID, procedureID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("user_procedures").
		Where(squirrel.Eq{
			"user_id":      userID,
			"master_id":    masterID,
			"procedure_id": procedureID,
		}).
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
		return ErrEnrollmentNotFound
	}

	return nil
}

// ListByUser получает все записи пользователя
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.Enrollment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "user_id", "master_id", "procedure_id", "created_at").
		From("user_procedures").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	enrollments := make([]*domain.Enrollment, 0)

	for rows.Next() {
		var e domain.Enrollment
		var createdAt sql.NullTime

		if err := rows.Scan(&e.ID, &e.UserID, &e.MasterID, &e.ProcedureID, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan row: %v", ErrScanRow, err)
		}

		e.CreatedAt = createdAt.Time
		enrollments = append(enrollments, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows error: %v", ErrScanRow, err)
	}

	return enrollments, nil
}

func (r *Repository) getByTriple(ctx context.Context, userID, masterID, procedureID int64) (*domain.Enrollment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "user_id", "master_id", "procedure_id", "created_at").
		From("user_procedures").
		Where(squirrel.Eq{
			"user_id":      userID,
			"master_id":    masterID,
			"procedure_id": procedureID,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByTriple - build select query: %v", ErrBuildQuery, err)
	}

	var e domain.Enrollment
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&e.ID, &e.UserID, &e.MasterID, &e.ProcedureID, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrEnrollmentNotFound
	}
	if err != nil {
		if pgerrors.IsSerializationFailure(err) {
			return nil, fmt.Errorf("getByTriple - serialization conflict: %w", err)
		}
		return nil, fmt.Errorf("%w: getByTriple - scan enrollment: %v", ErrScanRow, err)
	}

	e.CreatedAt = createdAt.Time
	return &e, nil
}
