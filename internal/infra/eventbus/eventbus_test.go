package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/pkg/metrics"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type message struct {
	routingKey string
	payload    []byte
}

type fakePublisher struct {
	mu       sync.Mutex
	err      error
	calls    int
	messages []message
}

func (p *fakePublisher) Publish(_ context.Context, routingKey string, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.calls++
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, message{routingKey: routingKey, payload: payload})
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func TestEventPublisher_PublishAppointmentEvent(t *testing.T) {
	fake := &fakePublisher{}
	m := metrics.NewWithRegisterer(prometheus.NewRegistry(), "test")
	publisher := NewEventPublisher(fake, m, nopLogger{})

	event := domain.NewAppointmentEvent(domain.AppointmentTransition{
		AppointmentID: uuid.New(),
		InterpreterID: uuid.New(),
		UserID:        uuid.New(),
		From:          domain.AppointmentStatusAccepted,
		To:            domain.AppointmentStatusCompleted,
	}, domain.EventSourceScheduler, time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC))

	require.NoError(t, publisher.PublishAppointmentEvent(context.Background(), event))

	require.Len(t, fake.messages, 1)
	assert.Equal(t, "appointment.completed", fake.messages[0].routingKey)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(fake.messages[0].payload, &decoded))
	assert.Equal(t, event.AppointmentID.String(), decoded["appointmentId"])
	assert.Equal(t, "ACCEPTED", decoded["from"])
	assert.Equal(t, "COMPLETED", decoded["to"])
	assert.Equal(t, "scheduler", decoded["source"])

	assert.Equal(t, float64(1), testutil.ToFloat64(m.EventsPublishedTotal.WithLabelValues("appointment.completed", "ok")))
}

func TestEventPublisher_PublishError(t *testing.T) {
	fake := &fakePublisher{err: errors.New("broker down")}
	m := metrics.NewWithRegisterer(prometheus.NewRegistry(), "test")
	publisher := NewEventPublisher(fake, m, nopLogger{})

	event := domain.NewAppointmentEvent(domain.AppointmentTransition{To: domain.AppointmentStatusCanceled}, domain.EventSourceAPI, time.Now())

	err := publisher.PublishAppointmentEvent(context.Background(), event)
	assert.Error(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.EventsPublishedTotal.WithLabelValues("appointment.canceled", "error")))
}

func TestBreakerPublisher_OpensAfterConsecutiveFailures(t *testing.T) {
	fake := &fakePublisher{err: errors.New("broker down")}
	settings := DefaultBreakerSettings()
	settings.FailureThreshold = 3
	publisher := NewBreakerPublisher(fake, settings, nopLogger{})

	for i := 0; i < 3; i++ {
		err := publisher.Publish(context.Background(), "appointment.pending", []byte("{}"))
		assert.Error(t, err)
	}

	err := publisher.Publish(context.Background(), "appointment.pending", []byte("{}"))
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, fake.calls, "при разомкнутой цепи брокер не вызывается")
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher(nopLogger{})
	assert.NoError(t, p.Publish(context.Background(), "appointment.accepted", []byte("{}")))
	assert.NoError(t, p.Close())
}
