package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/internal/infra/storage/advisory"
	"github.com/m04kA/SMC-InterpreterService/pkg/dbmetrics"
	"github.com/m04kA/SMC-InterpreterService/pkg/psqlbuilder"
)

const tableName = "schedules"

var columns = []string{
	"id",
	"interpreter_id",
	"day",
	"start_time",
	"end_time",
	"created_at",
	"updated_at",
}

// Repository репозиторий окон доступности интерпретаторов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое окно расписания
// Проверка пересечений выполняется вызывающей стороной в той же транзакции (см. HasConflict)
func (r *Repository) Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("id", "interpreter_id", "day", "start_time", "end_time").
		Values(s.ID, s.InterpreterID, s.Day, s.StartTime, s.EndTime).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetByID получает окно расписания по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %v", ErrScanRow, err)
	}

	return s, nil
}

// Update обновляет день и границы окна
func (r *Repository) Update(ctx context.Context, s *domain.Schedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("day", s.Day).
		Set("start_time", s.StartTime).
		Set("end_time", s.EndTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrScheduleNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет окно расписания
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
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
		return ErrScheduleNotFound
	}

	return nil
}

// List возвращает окна расписания с фильтрацией и пагинацией
func (r *Repository) List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildListQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

// ListByInterpreters возвращает все окна указанных интерпретаторов
// Используется для построения свободных слотов
func (r *Repository) ListByInterpreters(ctx context.Context, interpreterIDs []uuid.UUID) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Expr("interpreter_id = ANY(?::uuid[])", pq.Array(uuidStrings(interpreterIDs)))).
		OrderBy("interpreter_id ASC", "day ASC", "start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByInterpreters - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByInterpreters - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

// HasConflict проверяет, пересекается ли окно с другими окнами интерпретатора в этот день
// excludeID исключает редактируемое окно из сравнения
func (r *Repository) HasConflict(
	ctx context.Context,
	interpreterID uuid.UUID,
	day domain.DayOfWeek,
	interval domain.Interval,
	excludeID *uuid.UUID,
) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildConflictQuery(interpreterID, day, interval, excludeID).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasConflict - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: HasConflict - scan exists: %v", ErrScanRow, err)
	}

	return exists, nil
}

// LockInterpreterDay сериализует изменения расписания интерпретатора в пределах дня недели
// Работает только внутри транзакции
func (r *Repository) LockInterpreterDay(ctx context.Context, interpreterID uuid.UUID, day domain.DayOfWeek) error {
	return advisory.LockInterpreter(ctx, r.db, interpreterID, "day:"+string(day))
}

// buildConflictQuery SELECT EXISTS по полуоткрытому пересечению интервалов
func buildConflictQuery(
	interpreterID uuid.UUID,
	day domain.DayOfWeek,
	interval domain.Interval,
	excludeID *uuid.UUID,
) squirrel.SelectBuilder {
	builder := psqlbuilder.Select("1").
		From(tableName).
		Where(squirrel.Eq{"interpreter_id": interpreterID}).
		Where(squirrel.Eq{"day": day}).
		Where(squirrel.Lt{"start_time": interval.End}).
		Where(squirrel.Gt{"end_time": interval.Start})

	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}

	return builder.Prefix("SELECT EXISTS (").Suffix(")")
}

func buildListQuery(filter domain.ScheduleFilter) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(columns...).From(tableName)

	if filter.InterpreterID != nil {
		builder = builder.Where(squirrel.Eq{"interpreter_id": *filter.InterpreterID})
	}
	if filter.Day != nil {
		builder = builder.Where(squirrel.Eq{"day": *filter.Day})
	}
	if filter.TimeFrom != nil {
		builder = builder.Where(squirrel.GtOrEq{"start_time": *filter.TimeFrom})
	}
	if filter.TimeTo != nil {
		builder = builder.Where(squirrel.LtOrEq{"end_time": *filter.TimeTo})
	}

	page := filter.Page.Normalize()

	return builder.
		OrderBy("interpreter_id ASC", "day ASC", "start_time ASC", "id ASC").
		Limit(page.Limit()).
		Offset(page.Offset())
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSchedule(row rowScanner) (*domain.Schedule, error) {
	var s domain.Schedule
	err := row.Scan(
		&s.ID,
		&s.InterpreterID,
		&s.Day,
		&s.StartTime,
		&s.EndTime,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanSchedules(rows *sql.Rows) ([]*domain.Schedule, error) {
	schedules := make([]*domain.Schedule, 0)

	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSchedules - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
