package eventbus

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/SMC-InterpreterService/internal/domain"
	"github.com/m04kA/SMC-InterpreterService/pkg/metrics"
)

// EventPublisher публикует доменные события записей
type EventPublisher struct {
	publisher Publisher
	metrics   *metrics.Metrics
	logger    Logger
}

// NewEventPublisher создает publisher доменных событий
// metrics может быть nil
func NewEventPublisher(publisher Publisher, m *metrics.Metrics, logger Logger) *EventPublisher {
	return &EventPublisher{
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// PublishAppointmentEvent сериализует событие в JSON и отправляет его с routing key appointment.<status>
func (p *EventPublisher) PublishAppointmentEvent(ctx context.Context, event domain.AppointmentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	routingKey := event.RoutingKey()

	if err := p.publisher.Publish(ctx, routingKey, payload); err != nil {
		p.observe(routingKey, "error")
		p.logger.Error("PublishAppointmentEvent: failed, appointment_id=%s, routing_key=%s, error=%v",
			event.AppointmentID, routingKey, err)
		return err
	}

	p.observe(routingKey, "ok")
	return nil
}

func (p *EventPublisher) observe(routingKey, status string) {
	if p.metrics == nil {
		return
	}
	p.metrics.EventsPublishedTotal.WithLabelValues(routingKey, status).Inc()
}
