package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/internal/infra/storage/advisory"
	"github.com/m04kA/SMC-InterpreterService/pkg/dbmetrics"
	"github.com/m04kA/SMC-InterpreterService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

const tableName = "appointments"

var columns = []string{
	"id",
	"interpreter_id",
	"user_id",
	"date",
	"start_time",
	"end_time",
	"modality",
	"status",
	"uf",
	"city",
	"neighborhood",
	"street",
	"street_number",
	"address_details",
	"description",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями к интерпретаторам
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Проверка пересечений (HasConflict) и блокировка (LockInterpreterDate)
// должны выполняться в той же транзакции до вызова Create
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"interpreter_id",
			"user_id",
			"date",
			"start_time",
			"end_time",
			"modality",
			"status",
			"uf",
			"city",
			"neighborhood",
			"street",
			"street_number",
			"address_details",
			"description",
		).
		Values(
			a.ID,
			a.InterpreterID,
			a.UserID,
			a.Date.Format(domain.DateFormat),
			a.StartTime,
			a.EndTime,
			a.Modality,
			a.Status,
			a.UF,
			a.City,
			a.Neighborhood,
			a.Street,
			a.StreetNumber,
			a.AddressDetails,
			a.Description,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByID получает запись по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
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

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return a, nil
}

// Reschedule переносит запись на другую дату и время
func (r *Repository) Reschedule(ctx context.Context, a *domain.Appointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("date", a.Date.Format(domain.DateFormat)).
		Set("start_time", a.StartTime).
		Set("end_time", a.EndTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrAppointmentNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Reschedule - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// UpdateStatus меняет статус записи, только если текущий статус равен from
// Если статус уже изменился, возвращает ErrStatusChanged
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusChanged
	}

	return nil
}

// Search возвращает записи по фильтру, новые первыми
func (r *Repository) Search(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildSearchQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// HasConflict проверяет пересечение с активными (PENDING/ACCEPTED) записями интерпретатора на дату
// excludeID исключает переносимую запись из сравнения
func (r *Repository) HasConflict(
	ctx context.Context,
	interpreterID uuid.UUID,
	date time.Time,
	interval domain.Interval,
	excludeID *uuid.UUID,
) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildConflictQuery(interpreterID, date, interval, excludeID).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasConflict - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: HasConflict - scan exists: %v", ErrScanRow, err)
	}

	return exists, nil
}

// ListActiveInRange возвращает активные записи интерпретаторов в диапазоне дат включительно
func (r *Repository) ListActiveInRange(
	ctx context.Context,
	interpreterIDs []uuid.UUID,
	dateFrom, dateTo time.Time,
) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ids := make([]string, len(interpreterIDs))
	for i, id := range interpreterIDs {
		ids[i] = id.String()
	}

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Expr("interpreter_id = ANY(?::uuid[])", pq.Array(ids))).
		Where(squirrel.Eq{"status": activeStatuses()}).
		Where(squirrel.GtOrEq{"date": dateFrom.Format(domain.DateFormat)}).
		Where(squirrel.LtOrEq{"date": dateTo.Format(domain.DateFormat)}).
		OrderBy("date ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// TransitionExpired переводит все записи со статусом from, время окончания которых прошло, в статус to
// Запрос идемпотентен: повторный вызов не находит уже переведенные записи
func (r *Repository) TransitionExpired(
	ctx context.Context,
	from, to domain.AppointmentStatus,
	now time.Time,
) ([]domain.AppointmentTransition, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildTransitionExpiredQuery(from, to, now).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: TransitionExpired - build update query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: TransitionExpired - execute update: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	transitions := make([]domain.AppointmentTransition, 0)

	for rows.Next() {
		t := domain.AppointmentTransition{From: from, To: to}
		if err := rows.Scan(&t.AppointmentID, &t.InterpreterID, &t.UserID); err != nil {
			return nil, fmt.Errorf("%w: TransitionExpired - scan row: %v", ErrScanRow, err)
		}
		transitions = append(transitions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: TransitionExpired - rows error: %v", ErrScanRow, err)
	}

	return transitions, nil
}

// LockInterpreterDate сериализует бронирования интерпретатора на конкретную дату
// Работает только внутри транзакции
func (r *Repository) LockInterpreterDate(ctx context.Context, interpreterID uuid.UUID, date time.Time) error {
	return advisory.LockInterpreter(ctx, r.db, interpreterID, "date:"+date.Format(domain.DateFormat))
}

func buildConflictQuery(
	interpreterID uuid.UUID,
	date time.Time,
	interval domain.Interval,
	excludeID *uuid.UUID,
) squirrel.SelectBuilder {
	builder := psqlbuilder.Select("1").
		From(tableName).
		Where(squirrel.Eq{"interpreter_id": interpreterID}).
		Where(squirrel.Eq{"date": date.Format(domain.DateFormat)}).
		Where(squirrel.Eq{"status": activeStatuses()}).
		Where(squirrel.Lt{"start_time": interval.End}).
		Where(squirrel.Gt{"end_time": interval.Start})

	if excludeID != nil {
		builder = builder.Where(squirrel.NotEq{"id": *excludeID})
	}

	return builder.Prefix("SELECT EXISTS (").Suffix(")")
}

func buildSearchQuery(filter domain.AppointmentFilter) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(columns...).From(tableName)

	if filter.InterpreterID != nil {
		builder = builder.Where(squirrel.Eq{"interpreter_id": *filter.InterpreterID})
	}
	if filter.UserID != nil {
		builder = builder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Modality != nil {
		builder = builder.Where(squirrel.Eq{"modality": *filter.Modality})
	}
	if filter.FromDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"date": filter.FromDate.Format(domain.DateFormat)})

		if filter.DayLimit != nil {
			until := filter.FromDate.AddDate(0, 0, *filter.DayLimit)
			builder = builder.Where(squirrel.Lt{"date": until.Format(domain.DateFormat)})
		}
	}

	page := filter.Page.Normalize()

	return builder.
		OrderBy("date DESC", "end_time DESC", "id ASC").
		Limit(page.Limit()).
		Offset(page.Offset())
}

// buildTransitionExpiredQuery UPDATE ... RETURNING для записей, закончившихся строго до now
func buildTransitionExpiredQuery(from, to domain.AppointmentStatus, now time.Time) squirrel.UpdateBuilder {
	today := now.Format(domain.DateFormat)
	nowTime := now.Format("15:04:05")

	return psqlbuilder.Update(tableName).
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": from}).
		Where(squirrel.Or{
			squirrel.Lt{"date": today},
			squirrel.And{
				squirrel.Eq{"date": today},
				squirrel.Lt{"end_time": nowTime},
			},
		}).
		Suffix("RETURNING id, interpreter_id, user_id")
}

func activeStatuses() []string {
	statuses := make([]string, len(domain.ActiveAppointmentStatuses))
	for i, s := range domain.ActiveAppointmentStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		a                    domain.Appointment
		startTime, endTime   types.TimeString
		createdAt, updatedAt sql.NullTime
		uf, city, hood       sql.NullString
		street, details      sql.NullString
		description          sql.NullString
		streetNumber         sql.NullInt64
	)

	err := row.Scan(
		&a.ID,
		&a.InterpreterID,
		&a.UserID,
		&a.Date,
		&startTime,
		&endTime,
		&a.Modality,
		&a.Status,
		&uf,
		&city,
		&hood,
		&street,
		&streetNumber,
		&details,
		&description,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.StartTime = startTime
	a.EndTime = endTime
	a.UF = nullString(uf)
	a.City = nullString(city)
	a.Neighborhood = nullString(hood)
	a.Street = nullString(street)
	a.AddressDetails = nullString(details)
	a.Description = nullString(description)
	if streetNumber.Valid {
		n := int(streetNumber.Int64)
		a.StreetNumber = &n
	}
	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func nullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
