package parameters

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/pkg/dbmetrics"
	"github.com/m04kA/SMC-InterpreterService/pkg/psqlbuilder"
)

// Repository читает таблицу параметров, которой владеет другой сервис
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория параметров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByKey получает параметр по ключу
func (r *Repository) GetByKey(ctx context.Context, key string) (*domain.Parameter, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "key", "value").
		From("parameters").
		Where(squirrel.Eq{"key": key}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Parameter
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Key, &p.Value)

	if err == sql.ErrNoRows {
		return nil, ErrParameterNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan parameter: %v", ErrScanRow, err)
	}

	return &p, nil
}
