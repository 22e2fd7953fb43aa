package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends ListingEvents to one durable queue.  A connection is
// dialed per message; listings are rare enough that pooling is not
// worth holding a broker connection open.
type Publisher struct {
	url   string
	queue string
}

// NewPublisher returns a Publisher for the broker at url, or nil when
// url is empty so that callers can treat publishing as disabled.
func NewPublisher(url, queue string) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{url: url, queue: queue}
}

// Publish sends ev as a persistent JSON message.  OccurredAt is filled
// in when unset.
func (p *Publisher) Publish(ctx context.Context, ev ListingEvent) error {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("rabbitmq: marshal event: %w", err)
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("rabbitmq: dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq: open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// durable so messages survive broker restarts
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq: declare %s: %w", p.queue, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    ev.OccurredAt,
		Type:         ev.Kind,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("rabbitmq: publish %s: %w", ev.Kind, err)
	}
	return nil
}
