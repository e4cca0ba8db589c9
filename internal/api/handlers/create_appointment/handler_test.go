package create_appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterpreterService/internal/api/middleware"
	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	createAppointment "github.com/m04kA/SMC-InterpreterService/internal/usecase/create_appointment"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	err error
	got *createAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &createAppointment.Response{
		Appointment: &domain.Appointment{
			ID:            uuid.New(),
			InterpreterID: req.InterpreterID,
			UserID:        req.UserID,
			Date:          req.Date,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Modality:      req.Modality,
			Status:        domain.AppointmentStatusPending,
		},
		UserVerified: true,
	}, nil
}

func TestHandler_Handle(t *testing.T) {
	userID := uuid.New()
	interpreterID := uuid.New()
	body := fmt.Sprintf(`{"interpreterId":"%s","date":"2025-06-12","startTime":"10:00","endTime":"11:00","modality":"online"}`, interpreterID)

	tests := []struct {
		name     string
		body     string
		noUser   bool
		ucErr    error
		wantCode int
	}{
		{name: "запись создана", body: body, wantCode: http.StatusCreated},
		{name: "без пользователя", body: body, noUser: true, wantCode: http.StatusUnauthorized},
		{name: "неверный UF", body: fmt.Sprintf(`{"interpreterId":"%s","date":"2025-06-12","startTime":"10:00","endTime":"11:00","modality":"PERSONALLY","uf":"RSX"}`, interpreterID), wantCode: http.StatusBadRequest},
		{name: "некорректная дата", body: strings.Replace(body, "2025-06-12", "12/06/2025", 1), wantCode: http.StatusBadRequest},
		{name: "конфликт", body: body, ucErr: createAppointment.ErrAppointmentConflict, wantCode: http.StatusConflict},
		{name: "пользователь не найден", body: body, ucErr: createAppointment.ErrUserNotFound, wantCode: http.StatusNotFound},
		{name: "пользователь не активен", body: body, ucErr: createAppointment.ErrUserInactive, wantCode: http.StatusForbidden},
		{name: "в прошлом", body: body, ucErr: createAppointment.ErrInvalidDate, wantCode: http.StatusBadRequest},
		{name: "внутренняя ошибка", body: body, ucErr: createAppointment.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.ucErr}
			h := NewHandler(uc, nopLogger{})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(tt.body))
			if !tt.noUser {
				req = req.WithContext(middleware.WithUserID(req.Context(), userID))
			}
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode != http.StatusCreated {
				return
			}

			assert.Equal(t, userID, uc.got.UserID)
			assert.Equal(t, domain.ModalityOnline, uc.got.Modality)

			var resp CreateAppointmentResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "PENDING", resp.Status)
			assert.Equal(t, "2025-06-12", resp.Date)
			assert.True(t, resp.UserVerified)
		})
	}
}
