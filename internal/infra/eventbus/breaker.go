package eventbus

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerSettings параметры circuit breaker публикации
type BreakerSettings struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// DefaultBreakerSettings 5 ошибок подряд размыкают цепь на 30 секунд
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// BreakerPublisher оборачивает Publisher circuit breaker'ом
// При разомкнутой цепи публикация сразу возвращает gobreaker.ErrOpenState
type BreakerPublisher struct {
	next    Publisher
	breaker *gobreaker.CircuitBreaker[any]
}

// NewBreakerPublisher создает publisher с circuit breaker
func NewBreakerPublisher(next Publisher, settings BreakerSettings, logger Logger) *BreakerPublisher {
	breaker := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        "eventbus",
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed: name=%s, from=%s, to=%s", name, from.String(), to.String())
		},
	})

	return &BreakerPublisher{next: next, breaker: breaker}
}

// Publish публикует через вложенный Publisher под защитой breaker'а
func (p *BreakerPublisher) Publish(ctx context.Context, routingKey string, payload []byte) error {
	_, err := p.breaker.Execute(func() (any, error) {
		return nil, p.next.Publish(ctx, routingKey, payload)
	})
	return err
}

// Close закрывает вложенный Publisher
func (p *BreakerPublisher) Close() error {
	return p.next.Close()
}
