package accept_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-InterpreterService/internal/api/middleware"
	"github.com/m04kA/SMC-InterpreterService/internal/service/appointments"
	"github.com/m04kA/SMC-InterpreterService/internal/service/appointments/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct{ err error }

func (f fakeService) Accept(_ context.Context, id uuid.UUID, _ uuid.UUID) (*models.AppointmentResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentResponse{ID: id, Status: "ACCEPTED"}, nil
}

func TestHandler_Handle(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name     string
		withUser bool
		err      error
		wantCode int
	}{
		{name: "подтверждено", withUser: true, wantCode: http.StatusOK},
		{name: "без пользователя", wantCode: http.StatusUnauthorized},
		{name: "уже подтверждено", withUser: true, err: appointments.ErrInvalidTransition, wantCode: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(fakeService{err: tt.err}, nopLogger{})

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/"+id+"/accept", nil)
			req = mux.SetURLVars(req, map[string]string{"appointmentId": id})
			if tt.withUser {
				req = req.WithContext(middleware.WithUserID(req.Context(), uuid.New()))
			}
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
