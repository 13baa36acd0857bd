package ride

import (
	"errors"
	"strings"
	"time"
)

// Event is an append-only audit entry attached to a Ride, corresponding to
// the `ride_events` table. Timestamp is assigned at creation and immutable.
type Event struct {
	ID          string
	RideID      string
	Timestamp   time.Time
	Description string
}

var (
	ErrRideIDRequired      = errors.New("ride id is required")
	ErrDescriptionRequired = errors.New("event description is required")
)

// NewEvent constructs a new ride Event.
func NewEvent(rideID, description string) (*Event, error) {
	if rideID = strings.TrimSpace(rideID); rideID == "" {
		return nil, ErrRideIDRequired
	}
	if description = strings.TrimSpace(description); description == "" {
		return nil, ErrDescriptionRequired
	}

	return &Event{
		RideID:      rideID,
		Timestamp:   time.Now().UTC(),
		Description: description,
	}, nil
}

// Event descriptions recognized by the trip-duration report. Transitions to
// in_progress and completed record the pickup/dropoff wording the report
// aggregates on.
const (
	DescriptionRideCreated = "Ride created"
	DescriptionPickup      = "Status changed to pickup"
	DescriptionDropoff     = "Status changed to dropoff"
)

// StatusChangeDescription returns the audit description for a transition into
// the given status.
func StatusChangeDescription(next Status) string {
	switch next {
	case StatusInProgress:
		return DescriptionPickup
	case StatusCompleted:
		return DescriptionDropoff
	default:
		return "Status changed to " + next.String()
	}
}
