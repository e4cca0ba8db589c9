package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/internal/infra/storage/advisory"
	"github.com/m04kA/SMC-InterpreterService/pkg/ptr"
)

func TestBuildTransitionExpiredQuery(t *testing.T) {
	now := time.Date(2025, 6, 10, 14, 5, 30, 0, time.UTC)

	query, args, err := buildTransitionExpiredQuery(
		domain.AppointmentStatusPending,
		domain.AppointmentStatusCanceled,
		now,
	).ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE appointments SET status = $1, updated_at = NOW() "+
			"WHERE status = $2 AND (date < $3 OR (date = $4 AND end_time < $5)) "+
			"RETURNING id, interpreter_id, user_id",
		query,
	)
	assert.Equal(t, []interface{}{
		domain.AppointmentStatusCanceled,
		domain.AppointmentStatusPending,
		"2025-06-10",
		"2025-06-10",
		"14:05:30",
	}, args)
}

func TestBuildConflictQuery(t *testing.T) {
	interpreterID := uuid.New()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	interval := domain.Interval{Start: "10:00", End: "11:00"}

	t.Run("только активные записи", func(t *testing.T) {
		query, args, err := buildConflictQuery(interpreterID, date, interval, nil).ToSql()
		require.NoError(t, err)

		assert.Equal(t,
			"SELECT EXISTS ( SELECT 1 FROM appointments WHERE interpreter_id = $1 AND date = $2 "+
				"AND status IN ($3,$4) AND start_time < $5 AND end_time > $6 )",
			query,
		)
		require.Len(t, args, 6)
		assert.Equal(t, "2025-06-10", args[1])
		assert.Equal(t, "PENDING", args[2])
		assert.Equal(t, "ACCEPTED", args[3])
	})

	t.Run("перенос исключает саму запись", func(t *testing.T) {
		self := uuid.New()

		query, args, err := buildConflictQuery(interpreterID, date, interval, &self).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "AND id <> $7")
		assert.Len(t, args, 7)
	})
}

func TestBuildSearchQuery(t *testing.T) {
	tests := []struct {
		name         string
		filter       domain.AppointmentFilter
		wantWhere    string
		wantArgs     int
		wantLimitOff string
	}{
		{
			name:         "без фильтров",
			filter:       domain.AppointmentFilter{},
			wantWhere:    "",
			wantArgs:     0,
			wantLimitOff: "LIMIT 20 OFFSET 0",
		},
		{
			name: "статус и модальность",
			filter: domain.AppointmentFilter{
				Status:   ptr.Ptr(domain.AppointmentStatusAccepted),
				Modality: ptr.Ptr(domain.ModalityOnline),
				Page:     domain.Pagination{Page: 1, Size: 5},
			},
			wantWhere:    "WHERE status = $1 AND modality = $2",
			wantArgs:     2,
			wantLimitOff: "LIMIT 5 OFFSET 5",
		},
		{
			name: "окно дат",
			filter: domain.AppointmentFilter{
				FromDate: ptr.Ptr(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
				DayLimit: ptr.Ptr(7),
			},
			wantWhere:    "WHERE date >= $1 AND date < $2",
			wantArgs:     2,
			wantLimitOff: "LIMIT 20 OFFSET 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSearchQuery(tt.filter).ToSql()
			require.NoError(t, err)

			if tt.wantWhere == "" {
				assert.NotContains(t, query, "WHERE")
			} else {
				assert.Contains(t, query, tt.wantWhere)
			}
			assert.Contains(t, query, "ORDER BY date DESC, end_time DESC, id ASC")
			assert.Contains(t, query, tt.wantLimitOff)
			assert.Len(t, args, tt.wantArgs)
		})
	}

	t.Run("граница dayLimit", func(t *testing.T) {
		_, args, err := buildSearchQuery(domain.AppointmentFilter{
			FromDate: ptr.Ptr(time.Date(2025, 6, 28, 0, 0, 0, 0, time.UTC)),
			DayLimit: ptr.Ptr(5),
		}).ToSql()
		require.NoError(t, err)

		assert.Equal(t, []interface{}{"2025-06-28", "2025-07-03"}, args)
	})
}

func TestRepository_LockInterpreterDate_RequiresTransaction(t *testing.T) {
	repo := NewRepository(nil)

	err := repo.LockInterpreterDate(context.Background(), uuid.New(), time.Now())
	assert.ErrorIs(t, err, advisory.ErrNotInTransaction)
}
