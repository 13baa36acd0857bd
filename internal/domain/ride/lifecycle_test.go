package ride

import (
	"slices"
	"testing"
	"time"
)

func baseRide(status Status) *Ride {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	r := &Ride{
		ID:               "ride-1",
		RiderID:          "rider-1",
		DriverID:         "driver-1",
		Status:           status,
		StartLocation:    "Market St",
		EndLocation:      "Broadway",
		PickupLatitude:   37.7749,
		PickupLongitude:  -122.4194,
		DropoffLatitude:  37.8044,
		DropoffLongitude: -122.2712,
		StartTime:        start,
		CreatedAt:        start.Add(-time.Hour),
		UpdatedAt:        start.Add(-time.Hour),
	}
	if status == StatusCompleted {
		end := start.Add(time.Hour)
		r.EndTime = &end
	}
	return r
}

func TestApplyStatusTransition_ToInProgress(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	r := baseRide(StatusScheduled)
	r.Status = StatusInProgress

	effect := r.ApplyStatusTransition(StatusScheduled, now)

	if effect != MarkDriverBusy {
		t.Errorf("effect = %v, want MarkDriverBusy", effect)
	}
	if !r.StartTime.Equal(now) {
		t.Errorf("StartTime = %v, want %v", r.StartTime, now)
	}
	if r.EndTime != nil {
		t.Errorf("EndTime = %v, want nil", r.EndTime)
	}
}

func TestApplyStatusTransition_ToCompleted(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

	r := baseRide(StatusInProgress)
	originalStart := r.StartTime
	r.Status = StatusCompleted

	effect := r.ApplyStatusTransition(StatusInProgress, now)

	if effect != MarkDriverAvailable {
		t.Errorf("effect = %v, want MarkDriverAvailable", effect)
	}
	if r.EndTime == nil || !r.EndTime.Equal(now) {
		t.Errorf("EndTime = %v, want %v", r.EndTime, now)
	}
	if !r.StartTime.Equal(originalStart) {
		t.Errorf("StartTime changed to %v", r.StartTime)
	}
}

// A scheduled ride may jump straight to completed. EndTime is stamped even
// though StartTime was never stamped through the rule.
func TestApplyStatusTransition_ScheduledStraightToCompleted(t *testing.T) {
	now := time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC)

	r := baseRide(StatusScheduled)
	r.Status = StatusCompleted

	effect := r.ApplyStatusTransition(StatusScheduled, now)

	if effect != MarkDriverAvailable {
		t.Errorf("effect = %v, want MarkDriverAvailable", effect)
	}
	if r.EndTime == nil || !r.EndTime.Equal(now) {
		t.Errorf("EndTime = %v, want %v", r.EndTime, now)
	}
}

func TestApplyStatusTransition_LeavingCompletedClearsEndTime(t *testing.T) {
	now := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

	for _, next := range []Status{StatusScheduled, StatusInProgress} {
		r := baseRide(StatusCompleted)
		r.Status = next

		r.ApplyStatusTransition(StatusCompleted, now)

		if r.EndTime != nil {
			t.Errorf("to %s: EndTime = %v, want nil", next, r.EndTime)
		}
		if err := r.Validate(); err != nil {
			t.Errorf("to %s: Validate() = %v", next, err)
		}
	}
}

func TestApplyStatusTransition_SameStatusIsNoop(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	r := baseRide(StatusInProgress)
	originalStart := r.StartTime

	effect := r.ApplyStatusTransition(StatusInProgress, now)

	if effect != AvailabilityUnchanged {
		t.Errorf("effect = %v, want AvailabilityUnchanged", effect)
	}
	if !r.StartTime.Equal(originalStart) {
		t.Errorf("StartTime changed to %v", r.StartTime)
	}
}

func TestRevertReadOnlyFields_InProgress(t *testing.T) {
	stored := baseRide(StatusInProgress)

	updated := *stored
	updated.DriverID = "driver-2"
	updated.PickupLatitude = 40.0
	updated.PickupLongitude = -70.0
	updated.StartTime = stored.StartTime.Add(time.Hour)
	updated.EndLocation = "Telegraph Ave" // mutable in every status

	reverted := updated.RevertReadOnlyFields(stored)

	want := []string{"driver_id", "pickup_latitude", "pickup_longitude", "start_time"}
	if !slices.Equal(reverted, want) {
		t.Errorf("reverted = %v, want %v", reverted, want)
	}
	if updated.DriverID != stored.DriverID {
		t.Errorf("DriverID = %q, want %q", updated.DriverID, stored.DriverID)
	}
	if updated.PickupLatitude != stored.PickupLatitude || updated.PickupLongitude != stored.PickupLongitude {
		t.Errorf("pickup = (%v, %v), want stored values", updated.PickupLatitude, updated.PickupLongitude)
	}
	if !updated.StartTime.Equal(stored.StartTime) {
		t.Errorf("StartTime = %v, want %v", updated.StartTime, stored.StartTime)
	}
	if updated.EndLocation != "Telegraph Ave" {
		t.Errorf("EndLocation reverted to %q", updated.EndLocation)
	}
}

// Completed rides allow driver reassignment but still freeze the pickup.
func TestRevertReadOnlyFields_CompletedKeepsDriverChange(t *testing.T) {
	stored := baseRide(StatusCompleted)

	updated := *stored
	updated.DriverID = "driver-2"
	updated.PickupLatitude = 40.0

	reverted := updated.RevertReadOnlyFields(stored)

	if slices.Contains(reverted, "driver_id") {
		t.Error("driver_id reverted on a completed ride")
	}
	if updated.DriverID != "driver-2" {
		t.Errorf("DriverID = %q, want driver-2", updated.DriverID)
	}
	if !slices.Contains(reverted, "pickup_latitude") {
		t.Errorf("pickup_latitude not reverted: %v", reverted)
	}
}

func TestRevertReadOnlyFields_ScheduledRevertsNothing(t *testing.T) {
	stored := baseRide(StatusScheduled)

	updated := *stored
	updated.DriverID = "driver-2"
	updated.PickupLatitude = 40.0
	updated.StartTime = stored.StartTime.Add(time.Hour)

	if reverted := updated.RevertReadOnlyFields(stored); len(reverted) != 0 {
		t.Errorf("reverted = %v, want none", reverted)
	}
	if updated.DriverID != "driver-2" {
		t.Errorf("DriverID = %q, want driver-2", updated.DriverID)
	}
}

func TestRevertReadOnlyFields_UnchangedFieldsNotReported(t *testing.T) {
	stored := baseRide(StatusInProgress)

	updated := *stored
	updated.DriverID = "driver-2" // only this one differs

	reverted := updated.RevertReadOnlyFields(stored)
	if !slices.Equal(reverted, []string{"driver_id"}) {
		t.Errorf("reverted = %v, want [driver_id]", reverted)
	}
}
