package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-InterpreterService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-InterpreterService/pkg/ptr"
	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	items map[uuid.UUID]*domain.Appointment
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeRepo) Reschedule(_ context.Context, a *domain.Appointment) error {
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *fakeRepo) HasConflict(
	_ context.Context,
	interpreterID uuid.UUID,
	date time.Time,
	interval domain.Interval,
	excludeID *uuid.UUID,
) (bool, error) {
	for _, a := range r.items {
		if a.InterpreterID != interpreterID || !a.IsActive() || !a.Date.Equal(date) {
			continue
		}
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		if a.Interval().Overlaps(interval) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) LockInterpreterDate(context.Context, uuid.UUID, time.Time) error { return nil }

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func TestUseCase_Execute(t *testing.T) {
	interpreterID := uuid.New()
	date := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)

	first := &domain.Appointment{
		ID: uuid.New(), InterpreterID: interpreterID, Date: date,
		StartTime: "10:00", EndTime: "11:00", Status: domain.AppointmentStatusPending,
	}
	second := &domain.Appointment{
		ID: uuid.New(), InterpreterID: interpreterID, Date: date,
		StartTime: "13:00", EndTime: "14:00", Status: domain.AppointmentStatusAccepted,
	}
	done := &domain.Appointment{
		ID: uuid.New(), InterpreterID: interpreterID, Date: date,
		StartTime: "16:00", EndTime: "17:00", Status: domain.AppointmentStatusCompleted,
	}

	tests := []struct {
		name    string
		req     Request
		wantErr error
		want    domain.Interval
	}{
		{
			name: "сдвиг внутри своего же интервала",
			req:  Request{AppointmentID: first.ID, StartTime: ptr.Ptr(types.TimeString("10:30")), EndTime: ptr.Ptr(types.TimeString("11:30"))},
			want: domain.Interval{Start: "10:30", End: "11:30"},
		},
		{
			name:    "наезд на другую запись",
			req:     Request{AppointmentID: first.ID, EndTime: ptr.Ptr(types.TimeString("13:30"))},
			wantErr: ErrAppointmentConflict,
		},
		{
			name: "на место завершенной можно",
			req:  Request{AppointmentID: second.ID, StartTime: ptr.Ptr(types.TimeString("16:00")), EndTime: ptr.Ptr(types.TimeString("17:00"))},
			want: domain.Interval{Start: "16:00", End: "17:00"},
		},
		{
			name:    "завершенную переносить нельзя",
			req:     Request{AppointmentID: done.ID, StartTime: ptr.Ptr(types.TimeString("18:00")), EndTime: ptr.Ptr(types.TimeString("19:00"))},
			wantErr: ErrNotReschedulable,
		},
		{
			name:    "в прошлое нельзя",
			req:     Request{AppointmentID: first.ID, Date: ptr.Ptr(date.AddDate(0, 0, -5))},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "не найдена",
			req:     Request{AppointmentID: uuid.New(), EndTime: ptr.Ptr(types.TimeString("12:00"))},
			wantErr: ErrAppointmentNotFound,
		},
		{
			name:    "пустой перенос",
			req:     Request{AppointmentID: first.ID},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, s, d := *first, *second, *done
			repo := &fakeRepo{items: map[uuid.UUID]*domain.Appointment{f.ID: &f, s.ID: &s, d.ID: &d}}
			uc := NewUseCase(repo, fakeTx{}, nopLogger{})
			uc.timeProvider = fixedTime{now: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)}

			resp, err := uc.Execute(context.Background(), &tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, *first, *repo.items[first.ID])
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Appointment.Interval())
			assert.Equal(t, tt.want, repo.items[tt.req.AppointmentID].Interval())
		})
	}
}
