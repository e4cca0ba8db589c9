package advisory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-InterpreterService/pkg/dbmetrics"
)

var (
	// ErrNotInTransaction возвращается при попытке взять блокировку вне транзакции
	ErrNotInTransaction = errors.New("advisory: lock requires an active transaction")

	// ErrLock возвращается при ошибке взятия блокировки
	ErrLock = errors.New("advisory: failed to acquire lock")
)

const lockQuery = "SELECT pg_advisory_xact_lock(hashtext($1))"

// Key ключ блокировки для интерпретатора в пределах дня недели или даты
func Key(interpreterID uuid.UUID, scope string) string {
	return interpreterID.String() + ":" + scope
}

// LockInterpreter берёт транзакционную advisory-блокировку PostgreSQL
// Блокировка снимается автоматически при завершении транзакции
func LockInterpreter(ctx context.Context, db dbmetrics.DBExecutor, interpreterID uuid.UUID, scope string) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return ErrNotInTransaction
	}

	executor := dbmetrics.GetExecutor(ctx, db)
	if _, err := executor.ExecContext(ctx, lockQuery, Key(interpreterID, scope)); err != nil {
		return fmt.Errorf("%w: %v", ErrLock, err)
	}

	return nil
}
