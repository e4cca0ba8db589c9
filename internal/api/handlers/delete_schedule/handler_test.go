package delete_schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-InterpreterService/internal/service/schedules"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct{ err error }

func (f fakeService) Delete(context.Context, uuid.UUID) error { return f.err }

func TestHandler_Handle(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "удалено", wantCode: http.StatusNoContent},
		{name: "не найдено", err: schedules.ErrScheduleNotFound, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(fakeService{err: tt.err}, nopLogger{})

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/schedules/"+id, nil)
			req = mux.SetURLVars(req, map[string]string{"scheduleId": id})
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusNoContent {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}
