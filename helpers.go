package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/streadway/amqp"
)

const (
	sessionsQueue   = "sessions"
	updatesExchange = "session_updates"
)

// retry calls fn up to attempts times, waiting wait*(i+1) between tries.
// It stops early when ctx is done.
func retry[T any](ctx context.Context, attempts int, wait time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for i := 0; i < attempts; i++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(wait * time.Duration(i+1)):
		}
	}
	return zero, fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

// amqpPublisher publishes session updates on the topic exchange with
// routing key session.<id>.
type amqpPublisher struct {
	conn *amqp.Connection
}

func newAMQPPublisher(conn *amqp.Connection) (*amqpPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	defer ch.Close()
	if err := ch.ExchangeDeclare(updatesExchange, "topic", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}
	return &amqpPublisher{conn: conn}, nil
}

func (p *amqpPublisher) Publish(_ context.Context, update SessionUpdate) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, err := json.Marshal(update)
	if err != nil {
		return err
	}
	return ch.Publish(
		updatesExchange,
		routingKey(update.SessionID.String()),
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   update.Timestamp,
			Body:        body,
		},
	)
}

func routingKey(sessionID string) string {
	return fmt.Sprintf("session.%s", sessionID)
}
