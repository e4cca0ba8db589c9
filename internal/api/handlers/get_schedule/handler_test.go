package get_schedule

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-InterpreterService/internal/service/schedules"
	"github.com/m04kA/SMC-InterpreterService/internal/service/schedules/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct{ err error }

func (f fakeService) GetByID(_ context.Context, id uuid.UUID) (*models.ScheduleResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ScheduleResponse{ID: id}, nil
}

func TestHandler_Handle(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name     string
		id       string
		err      error
		wantCode int
	}{
		{name: "найдено", id: id, wantCode: http.StatusOK},
		{name: "некорректный ID", id: "1", wantCode: http.StatusBadRequest},
		{name: "не найдено", id: id, err: schedules.ErrScheduleNotFound, wantCode: http.StatusNotFound},
		{name: "ошибка хранилища", id: id, err: errors.New("db down"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(fakeService{err: tt.err}, nopLogger{})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/schedules/"+tt.id, nil)
			req = mux.SetURLVars(req, map[string]string{"scheduleId": tt.id})
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
