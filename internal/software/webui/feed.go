package webui

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"ride-management/internal/general/logger"
	"ride-management/internal/general/rabbitmq"
	"ride-management/internal/ports"
)

// RunStatusFeed consumes ride status updates from the broker and pushes them
// to the hub. It reconnects with a flat backoff and returns when ctx ends.
func RunStatusFeed(ctx context.Context, client *rabbitmq.Client, hub *Hub, log *logger.Logger) {
	for {
		err := client.Consume(ctx, rabbitmq.QueueRideStatus, "web-status-feed", 10,
			func(ctx context.Context, d amqp.Delivery) error {
				var msg ports.RideStatusMessage
				if err := json.Unmarshal(d.Body, &msg); err != nil {
					return fmt.Errorf("decode status message: %w", err)
				}
				hub.Broadcast(ctx, msg)
				return nil
			})

		if ctx.Err() != nil {
			return
		}
		if err != nil {
			log.Error(ctx, "status_feed_interrupted", "Status feed consumer stopped, retrying", err, nil)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(3 * time.Second):
		}
	}
}
