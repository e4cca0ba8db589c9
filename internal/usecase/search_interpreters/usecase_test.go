package search_interpreters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/pkg/ptr"
	"github.com/m04kA/SMC-InterpreterService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	calls  int
	filter domain.InterpreterFilter
}

func (r *fakeRepo) Search(_ context.Context, filter domain.InterpreterFilter) ([]*domain.Interpreter, error) {
	r.calls++
	r.filter = filter
	return []*domain.Interpreter{}, nil
}

func TestUseCase_Execute_BuildsFilter(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	repo := &fakeRepo{}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Modality:       ptr.Ptr("online"),
		Gender:         ptr.Ptr("FEMALE"),
		UF:             ptr.Ptr("RS"),
		City:           ptr.Ptr(" Porto Alegre "),
		SpecialtyIDs:   []string{a.String() + "," + b.String()},
		SpecialtyMatch: ptr.Ptr("all"),
		Date:           ptr.Ptr("2025-06-10"),
		RequestedStart: ptr.Ptr("10:00"),
		RequestedEnd:   ptr.Ptr("11:00"),
		Size:           ptr.Ptr("10"),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Interpreters)
	assert.Equal(t, 10, resp.Size)

	f := repo.filter
	assert.Equal(t, domain.ModalityOnline, *f.Modality)
	assert.Equal(t, domain.GenderFemale, *f.Gender)
	assert.Equal(t, "Porto Alegre", *f.City)
	assert.Equal(t, []uuid.UUID{a, b}, f.SpecialtyIDs)
	assert.Equal(t, domain.SpecialtyMatchAll, f.SpecialtyMatch)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), *f.Date)
	assert.Equal(t, types.TimeString("10:00"), *f.RequestedStart)
	assert.Nil(t, f.Day)
}

func TestUseCase_Execute_Defaults(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Name: ptr.Ptr("  ")})
	require.NoError(t, err)

	assert.Equal(t, domain.SpecialtyMatchAny, repo.filter.SpecialtyMatch)
	assert.Nil(t, repo.filter.NamePattern, "пустая строка не является критерием")
	assert.Equal(t, domain.Pagination{Page: 0, Size: domain.DefaultPageSize}, repo.filter.Page)
}

func TestUseCase_Execute_RejectsBeforeQuery(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name:    "начало не раньше конца",
			req:     Request{Day: ptr.Ptr("MON"), RequestedStart: ptr.Ptr("11:00"), RequestedEnd: ptr.Ptr("10:00")},
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "окно без дня",
			req:     Request{RequestedStart: ptr.Ptr("10:00"), RequestedEnd: ptr.Ptr("11:00")},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "только одна граница",
			req:     Request{Day: ptr.Ptr("MON"), RequestedStart: ptr.Ptr("10:00")},
			wantErr: ErrInvalidInput,
		},
		{name: "неизвестная модальность", req: Request{Modality: ptr.Ptr("REMOTE")}, wantErr: ErrInvalidInput},
		{name: "неизвестный пол", req: Request{Gender: ptr.Ptr("X")}, wantErr: ErrInvalidInput},
		{name: "неизвестный день", req: Request{Day: ptr.Ptr("MONDAY")}, wantErr: ErrInvalidInput},
		{name: "размер страницы 0", req: Request{Size: ptr.Ptr("0")}, wantErr: ErrInvalidInput},
		{name: "размер страницы 101", req: Request{Size: ptr.Ptr("101")}, wantErr: ErrInvalidInput},
		{name: "битый uuid специальности", req: Request{SpecialtyIDs: []string{"abc"}}, wantErr: ErrInvalidInput},
		{name: "неизвестный режим специальностей", req: Request{SpecialtyMatch: ptr.Ptr("SOME")}, wantErr: ErrInvalidInput},
		{name: "день без окна", req: Request{Day: ptr.Ptr("MON")}, wantErr: ErrInvalidInput},
		{name: "дата без окна", req: Request{Date: ptr.Ptr("2025-06-10")}, wantErr: ErrInvalidInput},
		{
			// 2025-06-10 вторник
			name: "день противоречит дате",
			req: Request{
				Day:            ptr.Ptr("MON"),
				Date:           ptr.Ptr("2025-06-10"),
				RequestedStart: ptr.Ptr("10:00"),
				RequestedEnd:   ptr.Ptr("11:00"),
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc := NewUseCase(repo, nopLogger{})

			_, err := uc.Execute(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, repo.calls, "запрос к БД не выполняется")
		})
	}
}

func TestUseCase_Execute_DayMatchingDate(t *testing.T) {
	repo := &fakeRepo{}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Day:            ptr.Ptr("tue"),
		Date:           ptr.Ptr("2025-06-10"),
		RequestedStart: ptr.Ptr("10:00"),
		RequestedEnd:   ptr.Ptr("11:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Tuesday, *repo.filter.Day)
	assert.Equal(t, 1, repo.calls)
}
