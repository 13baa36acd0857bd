package ride

import (
	"errors"
	"testing"
)

func TestNewEvent(t *testing.T) {
	e, err := NewEvent(" ride-1 ", "  Ride created  ")
	if err != nil {
		t.Fatalf("NewEvent: %v", err)
	}
	if e.RideID != "ride-1" || e.Description != "Ride created" {
		t.Errorf("event = %+v, want trimmed fields", e)
	}
	if e.Timestamp.IsZero() {
		t.Error("Timestamp not assigned")
	}

	if _, err := NewEvent("", "x"); !errors.Is(err, ErrRideIDRequired) {
		t.Errorf("err = %v, want ErrRideIDRequired", err)
	}
	if _, err := NewEvent("ride-1", "   "); !errors.Is(err, ErrDescriptionRequired) {
		t.Errorf("err = %v, want ErrDescriptionRequired", err)
	}
}

// The report aggregates on these exact strings; they must not drift.
func TestStatusChangeDescription(t *testing.T) {
	if got := StatusChangeDescription(StatusInProgress); got != "Status changed to pickup" {
		t.Errorf("in_progress description = %q", got)
	}
	if got := StatusChangeDescription(StatusCompleted); got != "Status changed to dropoff" {
		t.Errorf("completed description = %q", got)
	}
	if got := StatusChangeDescription(StatusScheduled); got != "Status changed to scheduled" {
		t.Errorf("scheduled description = %q", got)
	}
}
