package search_appointments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterpreterService/internal/service/appointments"
	"github.com/m04kA/SMC-InterpreterService/internal/service/appointments/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err error
	got *models.SearchRequest
}

func (f *fakeService) Search(_ context.Context, req *models.SearchRequest) (*models.AppointmentListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments?status=pending&dayLimit=7", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "pending", *svc.got.Status)
	assert.Equal(t, "7", *svc.got.DayLimit)
	assert.Nil(t, svc.got.FromDate)

	t.Run("некорректный фильтр", func(t *testing.T) {
		h := NewHandler(&fakeService{err: appointments.ErrInvalidInput}, nopLogger{})
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/appointments?status=DONE", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
