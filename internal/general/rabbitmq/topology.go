package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Topology names. The API service publishes status changes to the topic
// exchange; the web UI consumes them for its live feed.
const (
	ExchangeRideTopic = "ride.topic"

	QueueRideStatus = "ride.status.updates"

	RouteRideStatusPrefix = "ride.status."
)

func declareTopology(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(ExchangeRideTopic, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", ExchangeRideTopic, err)
	}

	if _, err := ch.QueueDeclare(QueueRideStatus, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", QueueRideStatus, err)
	}

	if err := ch.QueueBind(QueueRideStatus, RouteRideStatusPrefix+"*", ExchangeRideTopic, false, nil); err != nil {
		return fmt.Errorf("bind queue %s to %s: %w", QueueRideStatus, ExchangeRideTopic, err)
	}

	return nil
}
