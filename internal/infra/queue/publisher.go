package queue

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/NewsDesk/internal/domain"
	"github.com/NewsDesk/internal/infra/metrics"
	"github.com/NewsDesk/pkg/logging"
	"github.com/NewsDesk/pkg/newsapi"
	"github.com/sony/gobreaker"
)

const publishTimeout = 5 * time.Second

// EventPublisher is a newsapi.Hook that ships call events to an EventProducer.
// Hook methods only enqueue; Run drains the queue in the background, so a slow
// or dead broker never delays an API call. Events are dropped when the queue
// is full or the breaker is open.
type EventPublisher struct {
	producer domain.EventProducer
	events   chan domain.CallEvent
	cb       *gobreaker.CircuitBreaker
	sampler  *logging.ErrorSampler
}

var _ newsapi.Hook = (*EventPublisher)(nil)

func NewEventPublisher(producer domain.EventProducer, bufferSize int) *EventPublisher {
	if bufferSize < 1 {
		bufferSize = 1
	}

	cbSettings := gobreaker.Settings{
		Name:        "kafka-call-events",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("CircuitBreaker state changed", "name", name, "from", from, "to", to)
		},
	}

	return &EventPublisher{
		producer: producer,
		events:   make(chan domain.CallEvent, bufferSize),
		cb:       gobreaker.NewCircuitBreaker(cbSettings),
		sampler:  logging.NewErrorSampler(50),
	}
}

func (p *EventPublisher) BeforeRequest(_ context.Context, ev newsapi.RequestEvent) {
	p.enqueue(domain.CallEvent{
		ID:        ev.CallID,
		Phase:     domain.PhaseRequest,
		Operation: ev.Operation,
		Method:    ev.Method,
		Path:      ev.Path,
		Timestamp: ev.Time,
	})
}

func (p *EventPublisher) AfterResponse(_ context.Context, ev newsapi.ResponseEvent) {
	p.enqueue(domain.CallEvent{
		ID:         ev.CallID,
		Phase:      domain.PhaseResponse,
		Operation:  ev.Operation,
		Method:     ev.Method,
		Path:       ev.Path,
		StatusCode: ev.StatusCode,
		DurationMs: ev.Duration.Milliseconds(),
		Timestamp:  time.Now(),
	})
}

func (p *EventPublisher) OnError(_ context.Context, ev newsapi.ErrorEvent) {
	p.enqueue(domain.CallEvent{
		ID:         ev.CallID,
		Phase:      domain.PhaseError,
		Operation:  ev.Operation,
		Method:     ev.Method,
		Path:       ev.Path,
		StatusCode: ev.Err.StatusCode,
		Message:    ev.Err.Message,
		DurationMs: ev.Duration.Milliseconds(),
		Timestamp:  time.Now(),
	})
}

func (p *EventPublisher) enqueue(ev domain.CallEvent) {
	select {
	case p.events <- ev:
	default:
		metrics.EventsDropped.WithLabelValues("buffer_full").Inc()
		if ok, count := p.sampler.ShouldLog("buffer_full"); ok {
			slog.Warn("Call event queue full, dropping event", "operation", ev.Operation, "dropped_total", count)
		}
	}
}

// Run publishes queued events until ctx is cancelled.
func (p *EventPublisher) Run(ctx context.Context) {
	slog.Info("Starting call event publisher", "buffer", cap(p.events))
	for {
		select {
		case <-ctx.Done():
			if n := len(p.events); n > 0 {
				metrics.EventsDropped.WithLabelValues("shutdown").Add(float64(n))
				slog.Info("Call event publisher stopped with pending events", "pending", n)
			}
			return
		case ev := <-p.events:
			p.publish(ctx, ev)
		}
	}
}

func (p *EventPublisher) publish(ctx context.Context, ev domain.CallEvent) {
	_, err := p.cb.Execute(func() (interface{}, error) {
		pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()
		return nil, p.producer.Publish(pubCtx, &ev)
	})

	switch {
	case err == nil:
		metrics.EventsPublished.Inc()
		p.sampler.Reset("kafka_publish")
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.EventsDropped.WithLabelValues("breaker_open").Inc()
		if ok, count := p.sampler.ShouldLog("breaker_open"); ok {
			slog.Warn("Kafka breaker open, dropping call event", "dropped_total", count)
		}
	default:
		metrics.EventsDropped.WithLabelValues("publish_failed").Inc()
		if ok, count := p.sampler.ShouldLog("kafka_publish"); ok {
			slog.Error("Failed to publish call event", "id", ev.ID, "error", err, "failures", count)
		}
	}
}
