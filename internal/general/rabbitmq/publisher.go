package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"ride-management/internal/ports"
)

// StatusPublisher publishes ride status changes to the topic exchange.
type StatusPublisher struct {
	client *Client
}

// NewStatusPublisher constructs a StatusPublisher using the provided client.
func NewStatusPublisher(client *Client) ports.StatusPublisher {
	return &StatusPublisher{client: client}
}

// PublishRideStatus publishes the message with routing key
// "ride.status.<new_status>". Called after the owning transaction commits.
func (p *StatusPublisher) PublishRideStatus(ctx context.Context, msg ports.RideStatusMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal ride status message: %w", err)
	}

	return p.client.publish(ctx, ExchangeRideTopic, RouteRideStatusPrefix+msg.NewStatus, body)
}

// publish sends a persistent JSON message and waits for the broker confirm.
func (client *Client) publish(ctx context.Context, exchange, routingKey string, body []byte) error {
	client.mu.RLock()
	ch := client.pubChan
	conn := client.conn
	client.mu.RUnlock()

	if conn == nil || conn.IsClosed() {
		return errors.New("rabbitmq: connection is not open")
	}
	if ch == nil || ch.IsClosed() {
		return errors.New("rabbitmq: publish channel is not open")
	}

	client.pubMu.Lock()
	defer client.pubMu.Unlock()
	confirms := client.pubConfirms

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := ch.PublishWithContext(pubCtx, exchange, routingKey, true /* mandatory */, false, /* immediate */
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		},
	); err != nil {
		return err
	}

	select {
	case c := <-confirms:
		if !c.Ack {
			return errors.New("rabbitmq: publish not acknowledged")
		}
	case <-pubCtx.Done():
		// keep the confirm stream aligned: consume the pending confirm even
		// though the caller gets a timeout
		select {
		case c := <-confirms:
			if !c.Ack {
				return errors.New("rabbitmq: publish not acknowledged after timeout")
			}
		case <-time.After(2 * time.Second):
		}
		return pubCtx.Err()
	}

	return nil
}
