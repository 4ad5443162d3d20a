// Package kafka publishes order events relayed from the outbox.
package kafka

import (
	"context"
	"time"

	"github.com/M-ayank2005/Carryaptos/internal/core/domain/model/outbox"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// EventPublisher writes each outbox message to one topic, keyed by order id
// so that the events of an order keep their order within a partition.
type EventPublisher struct {
	w     writer
	topic string
}

// publishBatchTimeout caps how long a synchronous write waits to fill a
// batch. The relay writes one message per call, so the writer default of one
// second would limit it to a message per second.
const publishBatchTimeout = 10 * time.Millisecond

func NewEventPublisher(brokers []string, topic string) *EventPublisher {
	return newEventPublisherWithWriter(newWriter(brokers), topic)
}

func newWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: publishBatchTimeout,
	}
}

func newEventPublisherWithWriter(w writer, topic string) *EventPublisher {
	return &EventPublisher{w: w, topic: topic}
}

func (p *EventPublisher) Publish(ctx context.Context, messages ...outbox.Message) error {
	if len(messages) == 0 {
		return nil
	}

	out := make([]kafka.Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, kafka.Message{
			Topic: p.topic,
			Key:   []byte(m.AggregateID.String()),
			Value: m.Payload,
			Headers: []kafka.Header{
				{Key: "event-id", Value: []byte(m.ID.String())},
				{Key: "event-type", Value: []byte(m.EventType)},
			},
			Time: m.OccurredAt,
		})
	}

	if err := p.w.WriteMessages(ctx, out...); err != nil {
		return errors.Wrap(err, "kafka publish")
	}
	return nil
}

func (p *EventPublisher) Close() error {
	return errors.Wrap(p.w.Close(), "kafka close")
}
