package ride

import (
	"errors"
	"strings"
)

// Status is a ride status as stored in the `rides` table.
type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

var ErrInvalidStatus = errors.New("invalid ride status")

// ParseStatus normalizes (lowercases+trims) and validates a status string.
func ParseStatus(in string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(in)))
	if status.Valid() {
		return status, nil
	}
	return "", ErrInvalidStatus
}

// Valid reports whether status is one of the allowed ride status constants.
func (status Status) Valid() bool {
	switch status {
	case StatusScheduled, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// String returns the string representation of the Status.
func (status Status) String() string {
	return string(status)
}

// Terminal indicates if the status is a terminal state.
func (status Status) Terminal() bool {
	return status == StatusCompleted
}

// ReadOnlyFields lists the ride fields that must not change while the ride is
// in this status. Updates touching them are silently reverted to the stored
// values rather than rejected.
func (status Status) ReadOnlyFields() []string {
	switch status {
	case StatusInProgress:
		return []string{"driver_id", "pickup_latitude", "pickup_longitude", "start_time"}
	case StatusCompleted:
		return []string{"pickup_latitude", "pickup_longitude", "start_time"}
	default:
		return nil
	}
}
