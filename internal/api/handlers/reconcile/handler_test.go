package reconcile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterpreterService/internal/scheduler"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeReconciler struct{ result scheduler.Result }

func (f fakeReconciler) Reconcile(context.Context) scheduler.Result { return f.result }

func TestHandler_Handle(t *testing.T) {
	h := NewHandler(fakeReconciler{result: scheduler.Result{Canceled: 2, Completed: 1}}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/reconcile", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["canceledCount"])
	assert.Equal(t, float64(1), body["completedCount"])

	t.Run("аренда занята", func(t *testing.T) {
		h := NewHandler(fakeReconciler{result: scheduler.Result{Skipped: true}}, nopLogger{})
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/reconcile", nil))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})
}
