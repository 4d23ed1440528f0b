package timeslot

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SalonBookingService/internal/domain"
	"github.com/m04kA/SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SalonBookingService/pkg/pgerrors"
	"github.com/m04kA/SalonBookingService/pkg/psqlbuilder"
)

var slotColumns = []string{
	"id",
	"master_id",
	"procedure_id",
	"slot_date",
	"start_time",
	"end_time",
	"slot_duration_minutes",
	"is_available",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами времени
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// BulkCreate вставляет сгенерированные слоты одним запросом.
// Слот, чья идентичность (master_id, procedure_id, slot_date, start_time)
// уже существует, молча пропускается (ON CONFLICT DO NOTHING) - повторная
// генерация по пересекающемуся окну идемпотентна на уровне строк.
// Возвращает только реально вставленные слоты.
func (r *Repository) BulkCreate(ctx context.Context, slots []*domain.TimeSlot) ([]*domain.TimeSlot, error) {
	if len(slots) == 0 {
		return []*domain.TimeSlot{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("time_slots").
		Columns(
			"master_id",
			"procedure_id",
			"slot_date",
			"start_time",
			"end_time",
			"slot_duration_minutes",
			"is_available",
		)

	for _, slot := range slots {
		insertBuilder = insertBuilder.Values(
			slot.MasterID,
			slot.ProcedureID,
			slot.Date,
			slot.StartTime,
			slot.EndTime,
			slot.SlotDurationMinutes,
			slot.IsAvailable,
		)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (master_id, procedure_id, slot_date, start_time) DO NOTHING").
		Suffix("RETURNING " + strings.Join(slotColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: BulkCreate - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: BulkCreate - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// GetByID получает слот по ID.
// Внутри транзакции строка блокируется (FOR UPDATE), чтобы конкурирующее
// бронирование того же слота дождалось коммита и увидело is_available=false.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := r.scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		// Конфликт сериализации сохраняем в цепочке - его повторяет txmanager
		if pgerrors.IsSerializationFailure(err) {
			return nil, fmt.Errorf("GetByID - serialization conflict: %w", err)
		}
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// List получает слоты по фильтру. Nil-поля фильтра не ограничивают
// выборку: пустой фильтр возвращает все слоты. Дата сравнивается только
// по календарному дню. При filter.OnlyAvailable возвращаются только
// свободные слоты.
func (r *Repository) List(ctx context.Context, filter domain.SlotsFilter) ([]*domain.TimeSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("time_slots").
		OrderBy("slot_date ASC", "start_time ASC")

	if filter.MasterID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"master_id": *filter.MasterID})
	}
	if filter.ProcedureID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"procedure_id": *filter.ProcedureID})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where("slot_date = ?::date", filter.Date.Format(domain.DateFormat))
	}
	if filter.OnlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_available": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// MarkUnavailable помечает слот занятым.
// Если слот уже занят - ErrSlotUnavailable, если не существует - ErrSlotNotFound.
// Вызывается только в транзакции создания бронирования.
func (r *Repository) MarkUnavailable(ctx context.Context, id int64) error {
	return r.flipAvailability(ctx, id, false, "MarkUnavailable")
}

// MarkAvailable помечает слот свободным (при отмене бронирования)
func (r *Repository) MarkAvailable(ctx context.Context, id int64) error {
	return r.flipAvailability(ctx, id, true, "MarkAvailable")
}

func (r *Repository) flipAvailability(ctx context.Context, id int64, available bool, op string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("is_available", available).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "is_available": !available}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerrors.IsSerializationFailure(err) {
			return fmt.Errorf("%s - serialization conflict: %w", op, err)
		}
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		// Различаем "слот не существует" и "флаг уже в целевом состоянии"
		exists, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrSlotNotFound
		}
		if available {
			return ErrSlotAlreadyAvailable
		}
		return ErrSlotUnavailable
	}

	return nil
}

func (r *Repository) exists(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("time_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		if pgerrors.IsSerializationFailure(err) {
			return false, fmt.Errorf("exists - serialization conflict: %w", err)
		}
		return false, fmt.Errorf("%w: exists - scan: %v", ErrScanRow, err)
	}

	return true, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanSlot(row rowScanner) (*domain.TimeSlot, error) {
	var slot domain.TimeSlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.MasterID,
		&slot.ProcedureID,
		&slot.Date,
		&slot.StartTime,
		&slot.EndTime,
		&slot.SlotDurationMinutes,
		&slot.IsAvailable,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.TimeSlot, error) {
	slots := make([]*domain.TimeSlot, 0)

	for rows.Next() {
		slot, err := r.scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
