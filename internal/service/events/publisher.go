package events

import (
	"context"
	"time"

	"github.com/Domenick1991/seatbook/internal/domain"
	"github.com/Domenick1991/seatbook/internal/logger"
	"github.com/google/uuid"
)

type Producer interface {
	Publish(ctx context.Context, topic, key string, value any) error
}

// Publisher turns successful state changes into booking events. A nil
// Publisher or one without a producer does nothing.
type Publisher struct {
	producer           Producer
	topic              string
	notificationsTopic string
	log                *logger.Logger
	now                func() time.Time
}

type Option func(*Publisher)

func WithNotificationsTopic(topic string) Option {
	return func(p *Publisher) {
		p.notificationsTopic = topic
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Publisher) {
		p.now = now
	}
}

func NewPublisher(producer Producer, topic string, log *logger.Logger, opts ...Option) *Publisher {
	if log == nil {
		log = logger.Nop()
	}
	p := &Publisher{
		producer: producer,
		topic:    topic,
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish sends the event to the booking topic and, if configured, the
// notifications topic. Failures are logged and dropped.
func (p *Publisher) Publish(ctx context.Context, eventType domain.BookingEventType, flightID, passengerName string) {
	if p == nil || p.producer == nil || p.topic == "" {
		return
	}

	event := domain.BookingEvent{
		ID:            uuid.NewString(),
		Type:          eventType,
		FlightID:      flightID,
		PassengerName: passengerName,
		OccurredAt:    p.now().UTC(),
	}

	if err := p.producer.Publish(ctx, p.topic, flightID, event); err != nil {
		p.log.Warn("failed to publish booking event", "event_id", event.ID, "type", eventType, "flight_id", flightID, "error", err)
		return
	}
	if p.notificationsTopic == "" {
		return
	}
	if err := p.producer.Publish(ctx, p.notificationsTopic, flightID, event); err != nil {
		p.log.Warn("failed to publish notification", "event_id", event.ID, "type", eventType, "flight_id", flightID, "error", err)
	}
}
