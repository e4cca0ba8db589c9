package parameters

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	paramsRepo "github.com/m04kA/SMC-InterpreterService/internal/infra/storage/parameters"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	mu    sync.Mutex
	value *string
	err   error
	calls int
}

func (r *fakeRepo) GetByKey(_ context.Context, key string) (*domain.Parameter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	if r.value == nil {
		return nil, paramsRepo.ErrParameterNotFound
	}
	return &domain.Parameter{ID: uuid.New(), Key: key, Value: *r.value}, nil
}

func strPtr(s string) *string { return &s }

func TestService_GetDuration(t *testing.T) {
	const def = 30 * time.Minute

	tests := []struct {
		name  string
		value *string
		err   error
		want  time.Duration
	}{
		{name: "valid milliseconds", value: strPtr("60000"), want: time.Minute},
		{name: "spaces trimmed", value: strPtr(" 1500 "), want: 1500 * time.Millisecond},
		{name: "missing", value: nil, want: def},
		{name: "not a number", value: strPtr("often"), want: def},
		{name: "zero", value: strPtr("0"), want: def},
		{name: "negative", value: strPtr("-10"), want: def},
		{name: "overflows duration", value: strPtr("9223372036854775"), want: def},
		{name: "largest representable", value: strPtr("9223372036854"), want: 9223372036854 * time.Millisecond},
		{name: "store error", err: errors.New("connection refused"), want: def},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{value: tt.value, err: tt.err}
			svc := NewService(repo, time.Minute, nopLogger{})

			got := svc.GetDuration(context.Background(), domain.ParamAppointmentStatusSchedulerInterval, def)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_GetDuration_Caches(t *testing.T) {
	repo := &fakeRepo{value: strPtr("60000")}
	svc := NewService(repo, time.Minute, nopLogger{})
	ctx := context.Background()

	svc.GetDuration(ctx, "k", time.Second)
	svc.GetDuration(ctx, "k", time.Second)
	assert.Equal(t, 1, repo.calls)

	repo.value = strPtr("120000")
	svc.Invalidate("k")
	assert.Equal(t, 2*time.Minute, svc.GetDuration(ctx, "k", time.Second))
	assert.Equal(t, 2, repo.calls)
}

func TestService_GetDuration_StoreErrorNotCached(t *testing.T) {
	repo := &fakeRepo{err: errors.New("timeout")}
	svc := NewService(repo, time.Minute, nopLogger{})
	ctx := context.Background()

	svc.GetDuration(ctx, "k", time.Second)
	svc.GetDuration(ctx, "k", time.Second)
	assert.Equal(t, 2, repo.calls)
}
