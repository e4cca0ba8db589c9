package interpreter

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/pkg/dbmetrics"
	"github.com/m04kA/SMC-InterpreterService/pkg/psqlbuilder"
)

// Repository репозиторий интерпретаторов (только чтение)
// Профили создаются в другом сервисе, здесь они используются для поиска и проверок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория интерпретаторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Search ищет интерпретаторов по фильтру и подгружает их локации и специальности
func (r *Repository) Search(ctx context.Context, filter domain.InterpreterFilter) ([]*domain.Interpreter, error) {
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

	interpreters := make([]*domain.Interpreter, 0)
	for rows.Next() {
		i, err := scanInterpreter(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: Search - scan row: %v", ErrScanRow, err)
		}
		interpreters = append(interpreters, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Search - rows error: %v", ErrScanRow, err)
	}

	if err := r.loadRelations(ctx, interpreters); err != nil {
		return nil, err
	}

	return interpreters, nil
}

// GetByID получает интерпретатора со всеми локациями и специальностями
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Interpreter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(searchColumns...).
		From("interpreters i").
		Where(squirrel.Eq{"i.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	i, err := scanInterpreter(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrInterpreterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan interpreter: %v", ErrScanRow, err)
	}

	if err := r.loadRelations(ctx, []*domain.Interpreter{i}); err != nil {
		return nil, err
	}

	return i, nil
}

// Exists проверяет, существует ли интерпретатор
func (r *Repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("interpreters").
		Where(squirrel.Eq{"id": id}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: Exists - scan exists: %v", ErrScanRow, err)
	}

	return exists, nil
}

// loadRelations заполняет Locations и Specialties двумя запросами на всю страницу
func (r *Repository) loadRelations(ctx context.Context, interpreters []*domain.Interpreter) error {
	if len(interpreters) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*domain.Interpreter, len(interpreters))
	ids := make([]string, 0, len(interpreters))
	for _, i := range interpreters {
		byID[i.ID] = i
		ids = append(ids, i.ID.String())
	}

	if err := r.loadLocations(ctx, byID, ids); err != nil {
		return err
	}

	return r.loadSpecialties(ctx, byID, ids)
}

func (r *Repository) loadLocations(ctx context.Context, byID map[uuid.UUID]*domain.Interpreter, ids []string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "interpreter_id", "uf", "city", "neighborhood").
		From("interpreter_locations").
		Where(squirrel.Expr("interpreter_id = ANY(?::uuid[])", pq.Array(ids))).
		OrderBy("uf ASC", "city ASC", "neighborhood ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadLocations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadLocations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			loc           domain.Location
			interpreterID uuid.UUID
			neighborhood  sql.NullString
		)
		if err := rows.Scan(&loc.ID, &interpreterID, &loc.UF, &loc.City, &neighborhood); err != nil {
			return fmt.Errorf("%w: loadLocations - scan row: %v", ErrScanRow, err)
		}
		loc.Neighborhood = neighborhood.String

		if i, ok := byID[interpreterID]; ok {
			i.Locations = append(i.Locations, loc)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadLocations - rows error: %v", ErrScanRow, err)
	}

	return nil
}

func (r *Repository) loadSpecialties(ctx context.Context, byID map[uuid.UUID]*domain.Interpreter, ids []string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("isp.interpreter_id", "sp.id", "sp.name").
		From("interpreter_specialties isp").
		Join("specialties sp ON sp.id = isp.specialty_id").
		Where(squirrel.Expr("isp.interpreter_id = ANY(?::uuid[])", pq.Array(ids))).
		OrderBy("sp.name ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadSpecialties - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadSpecialties - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			interpreterID uuid.UUID
			sp            domain.Specialty
		)
		if err := rows.Scan(&interpreterID, &sp.ID, &sp.Name); err != nil {
			return fmt.Errorf("%w: loadSpecialties - scan row: %v", ErrScanRow, err)
		}

		if i, ok := byID[interpreterID]; ok {
			i.Specialties = append(i.Specialties, sp)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadSpecialties - rows error: %v", ErrScanRow, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInterpreter(row rowScanner) (*domain.Interpreter, error) {
	var (
		i                    domain.Interpreter
		phone                sql.NullString
		rating               sql.NullFloat64
		description, video   sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&phone,
		&i.Gender,
		&i.Modality,
		&rating,
		&description,
		&video,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	i.Phone = phone.String
	if rating.Valid {
		v := rating.Float64
		i.Rating = &v
	}
	if description.Valid {
		v := description.String
		i.Description = &v
	}
	if video.Valid {
		v := video.String
		i.VideoURL = &v
	}
	i.CreatedAt = createdAt.Time
	i.UpdatedAt = updatedAt.Time
	i.Locations = make([]domain.Location, 0)
	i.Specialties = make([]domain.Specialty, 0)

	return &i, nil
}
