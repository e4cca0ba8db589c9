package list_schedules

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterpreterService/internal/service/schedules"
	"github.com/m04kA/SMC-InterpreterService/internal/service/schedules/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err error
	got *models.ListRequest
}

func (f *fakeService) List(_ context.Context, req *models.ListRequest) (*models.ScheduleListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ScheduleListResponse{Schedules: []models.ScheduleResponse{}}, nil
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/schedules?dayOfWeek=TUE&timeFrom=08:00&size=", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	require.NotNil(t, svc.got.Day)
	assert.Equal(t, "TUE", *svc.got.Day)
	assert.Equal(t, "08:00", *svc.got.TimeFrom)
	assert.Nil(t, svc.got.Size, "пустой параметр считается отсутствующим")
	assert.Nil(t, svc.got.InterpreterID)

	t.Run("некорректный фильтр", func(t *testing.T) {
		h := NewHandler(&fakeService{err: fmt.Errorf("%w: size", schedules.ErrInvalidInput)}, nopLogger{})
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/schedules?size=500", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
