package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-InterpreterService/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	err  error
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestHandler_Handle_GroupsSlots(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	day := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		DateFrom: day,
		DateTo:   day,
		Groups: []domain.GroupedAvailability{
			{Date: day, InterpreterID: a, Slots: []domain.TimeSlot{
				{Date: day, InterpreterID: a, StartTime: "10:00", EndTime: "11:00"},
				{Date: day, InterpreterID: a, StartTime: "10:30", EndTime: "11:30"},
			}},
			{Date: day, InterpreterID: b, Slots: []domain.TimeSlot{
				{Date: day, InterpreterID: b, StartTime: "14:00", EndTime: "15:00"},
			}},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	url := "/api/v1/schedules/available?interpreterId=" + a.String() + "&interpreterId=" + b.String() +
		"&dateFrom=2025-06-11&dateTo=2025-06-11"
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, url, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []uuid.UUID{a, b}, uc.got.InterpreterIDs)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Groups, 2)
	assert.Equal(t, "2025-06-11", body.Groups[0].Date)
	assert.Len(t, body.Groups[0].Slots, 2)
	assert.Equal(t, AvailableSlot{Date: "2025-06-11", InterpreterID: b, StartTime: "14:00", EndTime: "15:00"}, body.Groups[1].Slots[0])
}

func TestHandler_Handle_BadRequests(t *testing.T) {
	id := uuid.NewString()

	tests := []struct {
		name  string
		query string
		ucErr error
	}{
		{name: "без интерпретаторов", query: "dateFrom=2025-06-11&dateTo=2025-06-12"},
		{name: "без дат", query: "interpreterId=" + id},
		{name: "некорректный UUID", query: "interpreterId=1&dateFrom=2025-06-11&dateTo=2025-06-12"},
		{name: "некорректная дата", query: "interpreterId=" + id + "&dateFrom=11.06.2025&dateTo=2025-06-12"},
		{name: "слишком длинный диапазон", query: "interpreterId=" + id + "&dateFrom=2025-06-01&dateTo=2025-08-01", ucErr: getAvailableSlots.ErrInvalidDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.ucErr}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/schedules/available?"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
