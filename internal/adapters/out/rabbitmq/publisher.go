// Package rabbitmq implements the event publisher port over AMQP.
// Assignment submissions are published to a durable queue consumed by
// notification and analytics services.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"geodispatch/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher implements ports.EventPublisher using a dedicated AMQP
// connection and channel. Publish calls are safe for sequential use from
// command handlers; the broker connection is long-lived.
type Publisher struct {
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string
}

// NewPublisher dials the broker and declares the target queue as durable,
// so submitted assignments survive a broker restart.
func NewPublisher(url, queue string) (*Publisher, error) {
	if url == "" {
		return nil, errors.New("rabbitmq url is empty")
	}
	if queue == "" {
		return nil, errors.New("rabbitmq queue name is empty")
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if _, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, ch: ch, queue: queue}, nil
}

// PublishAssignmentSubmitted serializes the event as JSON and publishes it
// persistently to the queue.
func (p *Publisher) PublishAssignmentSubmitted(ctx context.Context, event ports.AssignmentSubmittedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.ch.PublishWithContext(
		ctx,
		"", // default exchange
		p.queue,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
