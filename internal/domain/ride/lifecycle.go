package ride

import (
	"slices"
	"time"
)

// AvailabilityEffect describes the driver-availability side effect a status
// transition requires. The caller persists the ride and the driver flag
// inside the same transaction.
type AvailabilityEffect int

const (
	AvailabilityUnchanged AvailabilityEffect = iota
	MarkDriverBusy
	MarkDriverAvailable
)

// ApplyStatusTransition applies the lifecycle rule for a ride about to be
// persisted. previous must be the status read from the durable store, not a
// caller-supplied value.
//
// Transition ordering is deliberately unrestricted: a scheduled ride may jump
// straight to completed, which stamps EndTime without ever stamping StartTime
// through this rule.
func (r *Ride) ApplyStatusTransition(previous Status, now time.Time) AvailabilityEffect {
	now = now.UTC()

	// moving out of completed clears the end stamp so the
	// end_time-implies-completed invariant keeps holding
	if r.Status != StatusCompleted && previous == StatusCompleted {
		r.EndTime = nil
		r.touch()
	}

	switch {
	case r.Status == StatusInProgress && previous != StatusInProgress:
		r.StartTime = now
		r.touch()
		return MarkDriverBusy

	case r.Status == StatusCompleted && previous != StatusCompleted:
		r.EndTime = &now
		r.touch()
		return MarkDriverAvailable

	default:
		return AvailabilityUnchanged
	}
}

// RevertReadOnlyFields copies the stored values of every field the stored
// status marks read-only from stored into r, and returns the names of fields
// that were actually reverted. This is deliberate silent correction, not a
// validation error.
func (r *Ride) RevertReadOnlyFields(stored *Ride) []string {
	var reverted []string

	fields := stored.Status.ReadOnlyFields()
	if slices.Contains(fields, "driver_id") && r.DriverID != stored.DriverID {
		r.DriverID = stored.DriverID
		reverted = append(reverted, "driver_id")
	}
	if slices.Contains(fields, "pickup_latitude") && r.PickupLatitude != stored.PickupLatitude {
		r.PickupLatitude = stored.PickupLatitude
		reverted = append(reverted, "pickup_latitude")
	}
	if slices.Contains(fields, "pickup_longitude") && r.PickupLongitude != stored.PickupLongitude {
		r.PickupLongitude = stored.PickupLongitude
		reverted = append(reverted, "pickup_longitude")
	}
	if slices.Contains(fields, "start_time") && !r.StartTime.Equal(stored.StartTime) {
		r.StartTime = stored.StartTime
		reverted = append(reverted, "start_time")
	}

	return reverted
}
