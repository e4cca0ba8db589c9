package schedule

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/internal/infra/storage/advisory"
	"github.com/m04kA/SMC-InterpreterService/pkg/ptr"
	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

func TestBuildConflictQuery(t *testing.T) {
	interpreterID := uuid.New()
	interval := domain.Interval{Start: "09:00", End: "10:00"}

	t.Run("без исключения", func(t *testing.T) {
		query, args, err := buildConflictQuery(interpreterID, domain.Monday, interval, nil).ToSql()
		require.NoError(t, err)

		assert.Equal(t,
			"SELECT EXISTS ( SELECT 1 FROM schedules WHERE interpreter_id = $1 AND day = $2 AND start_time < $3 AND end_time > $4 )",
			query,
		)
		require.Len(t, args, 4)
		assert.EqualValues(t, "10:00", args[2])
		assert.EqualValues(t, "09:00", args[3])
	})

	t.Run("с исключением редактируемого окна", func(t *testing.T) {
		excludeID := uuid.New()

		query, args, err := buildConflictQuery(interpreterID, domain.Monday, interval, &excludeID).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "AND id <> $5")
		assert.Len(t, args, 5)
	})
}

func TestBuildListQuery(t *testing.T) {
	interpreterID := uuid.New()

	t.Run("без фильтров", func(t *testing.T) {
		query, args, err := buildListQuery(domain.ScheduleFilter{}).ToSql()
		require.NoError(t, err)

		assert.NotContains(t, query, "WHERE")
		assert.Contains(t, query, "ORDER BY interpreter_id ASC, day ASC, start_time ASC, id ASC")
		assert.Contains(t, query, "LIMIT 20 OFFSET 0")
		assert.Empty(t, args)
	})

	t.Run("все фильтры", func(t *testing.T) {
		filter := domain.ScheduleFilter{
			InterpreterID: &interpreterID,
			Day:           ptr.Ptr(domain.Friday),
			TimeFrom:      ptr.Ptr(types.TimeString("08:00")),
			TimeTo:        ptr.Ptr(types.TimeString("18:00")),
			Page:          domain.Pagination{Page: 2, Size: 10},
		}

		query, args, err := buildListQuery(filter).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "WHERE interpreter_id = $1 AND day = $2 AND start_time >= $3 AND end_time <= $4")
		assert.Contains(t, query, "LIMIT 10 OFFSET 20")
		assert.Len(t, args, 4)
	})
}

func TestRepository_LockInterpreterDay_RequiresTransaction(t *testing.T) {
	repo := NewRepository(nil)

	err := repo.LockInterpreterDay(context.Background(), uuid.New(), domain.Monday)
	assert.ErrorIs(t, err, advisory.ErrNotInTransaction)
}
