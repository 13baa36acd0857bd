package service_test

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"ride-management/internal/domain/ride"
	"ride-management/internal/domain/user"
	"ride-management/internal/ports"
)

func TestUpdateRide_ToInProgress_StampsStartAndMarksDriverBusy(t *testing.T) {
	svc, m := newRideService(t)

	stored := storedRide(ride.StatusScheduled)
	before := time.Now().UTC()

	m.rides.EXPECT().GetByIDForUpdate(gomock.Any(), "ride-1").Return(stored, nil)
	m.rides.EXPECT().UpdateRide(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *ride.Ride) error {
			if r.Status != ride.StatusInProgress {
				t.Fatalf("expected in_progress, got %s", r.Status)
			}
			if r.StartTime.Before(before) {
				t.Fatalf("expected start_time stamped to now, got %v", r.StartTime)
			}
			if r.EndTime != nil {
				t.Fatalf("end_time must stay unset")
			}
			return nil
		})
	m.users.EXPECT().SetDriverAvailability(gomock.Any(), "driver-1", false).Return(nil)
	m.events.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *ride.Event) error {
			if e.Description != ride.DescriptionPickup {
				t.Fatalf("expected pickup event, got %q", e.Description)
			}
			return nil
		})
	m.pub.EXPECT().PublishRideStatus(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg ports.RideStatusMessage) error {
			if msg.OldStatus != "scheduled" || msg.NewStatus != "in_progress" {
				t.Fatalf("unexpected status message: %+v", msg)
			}
			return nil
		})

	res, err := svc.UpdateRide(context.Background(), adminActor(), "ride-1", ports.UpdateRideInput{
		Status: strPtr("in_progress"),
	})
	if err != nil {
		t.Fatalf("UpdateRide: %v", err)
	}
	if len(res.IgnoredFields) != 0 {
		t.Fatalf("expected no ignored fields, got: %v", res.IgnoredFields)
	}
}

func TestUpdateRide_ToCompleted_StampsEndAndFreesDriver(t *testing.T) {
	svc, m := newRideService(t)

	stored := storedRide(ride.StatusInProgress)
	before := time.Now().UTC()

	m.rides.EXPECT().GetByIDForUpdate(gomock.Any(), "ride-1").Return(stored, nil)
	m.rides.EXPECT().UpdateRide(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *ride.Ride) error {
			if r.Status != ride.StatusCompleted {
				t.Fatalf("expected completed, got %s", r.Status)
			}
			if r.EndTime == nil || r.EndTime.Before(before) {
				t.Fatalf("expected end_time stamped to now, got %v", r.EndTime)
			}
			if !r.StartTime.Equal(stored.StartTime) {
				t.Fatalf("start_time must be untouched on completion")
			}
			return nil
		})
	m.users.EXPECT().SetDriverAvailability(gomock.Any(), "driver-1", true).Return(nil)
	m.events.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *ride.Event) error {
			if e.Description != ride.DescriptionDropoff {
				t.Fatalf("expected dropoff event, got %q", e.Description)
			}
			return nil
		})
	m.pub.EXPECT().PublishRideStatus(gomock.Any(), gomock.Any()).Return(nil)

	if _, err := svc.UpdateRide(context.Background(), adminActor(), "ride-1", ports.UpdateRideInput{
		Status: strPtr("completed"),
	}); err != nil {
		t.Fatalf("UpdateRide: %v", err)
	}
}

func TestUpdateRide_ScheduledStraightToCompleted(t *testing.T) {
	svc, m := newRideService(t)

	stored := storedRide(ride.StatusScheduled)

	m.rides.EXPECT().GetByIDForUpdate(gomock.Any(), "ride-1").Return(stored, nil)
	m.rides.EXPECT().UpdateRide(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *ride.Ride) error {
			if r.Status != ride.StatusCompleted || r.EndTime == nil {
				t.Fatalf("expected completed with end_time, got: %+v", r)
			}
			// the jump never passed through in_progress, so the scheduled
			// pickup time stays
			if !r.StartTime.Equal(stored.StartTime) {
				t.Fatalf("start_time must keep its scheduled value")
			}
			return nil
		})
	m.users.EXPECT().SetDriverAvailability(gomock.Any(), "driver-1", true).Return(nil)
	m.events.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
	m.pub.EXPECT().PublishRideStatus(gomock.Any(), gomock.Any()).Return(nil)

	if _, err := svc.UpdateRide(context.Background(), adminActor(), "ride-1", ports.UpdateRideInput{
		Status: strPtr("completed"),
	}); err != nil {
		t.Fatalf("UpdateRide: %v", err)
	}
}

func TestUpdateRide_InProgress_SilentlyRevertsFrozenFields(t *testing.T) {
	svc, m := newRideService(t)

	stored := storedRide(ride.StatusInProgress)

	m.rides.EXPECT().GetByIDForUpdate(gomock.Any(), "ride-1").Return(stored, nil)
	m.rides.EXPECT().UpdateRide(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *ride.Ride) error {
			if r.DriverID != stored.DriverID {
				t.Fatalf("driver change must be reverted while in progress")
			}
			if r.PickupLatitude != stored.PickupLatitude || r.PickupLongitude != stored.PickupLongitude {
				t.Fatalf("pickup change must be reverted while in progress")
			}
			if !r.StartTime.Equal(stored.StartTime) {
				t.Fatalf("start_time change must be reverted while in progress")
			}
			if r.EndLocation != "C" {
				t.Fatalf("mutable fields must still update, got %q", r.EndLocation)
			}
			return nil
		})
	// status unchanged: no availability flip, no event, no publish

	res, err := svc.UpdateRide(context.Background(), adminActor(), "ride-1", ports.UpdateRideInput{
		DriverID:        strPtr("driver-2"),
		PickupLatitude:  f64Ptr(40.0),
		PickupLongitude: f64Ptr(-70.0),
		StartTime:       timePtr(time.Now().UTC().Add(time.Hour)),
		EndLocation:     strPtr("C"),
	})
	if err != nil {
		t.Fatalf("UpdateRide: %v", err)
	}

	for _, field := range []string{"driver_id", "pickup_latitude", "pickup_longitude", "start_time"} {
		if !slices.Contains(res.IgnoredFields, field) {
			t.Fatalf("expected %s in ignored fields, got: %v", field, res.IgnoredFields)
		}
	}
}

func TestUpdateRide_CompletedAllowsDriverChange(t *testing.T) {
	svc, m := newRideService(t)

	stored := storedRide(ride.StatusCompleted)

	m.rides.EXPECT().GetByIDForUpdate(gomock.Any(), "ride-1").Return(stored, nil)

	// completed freezes pickup and start_time, but not the driver
	m.users.EXPECT().GetByID(gomock.Any(), "driver-2").Return(&user.User{ID: "driver-2", Role: user.RoleDriver}, nil)
	m.rides.EXPECT().UpdateRide(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *ride.Ride) error {
			if r.DriverID != "driver-2" {
				t.Fatalf("expected driver change to persist, got %q", r.DriverID)
			}
			return nil
		})

	res, err := svc.UpdateRide(context.Background(), adminActor(), "ride-1", ports.UpdateRideInput{
		DriverID: strPtr("driver-2"),
	})
	if err != nil {
		t.Fatalf("UpdateRide: %v", err)
	}
	if len(res.IgnoredFields) != 0 {
		t.Fatalf("expected no ignored fields, got: %v", res.IgnoredFields)
	}
}

func TestUpdateRide_NotFoundAndForbidden(t *testing.T) {
	svc, m := newRideService(t)

	m.rides.EXPECT().GetByIDForUpdate(gomock.Any(), "missing").Return(nil, ports.ErrNotFound)
	if _, err := svc.UpdateRide(context.Background(), adminActor(), "missing", ports.UpdateRideInput{}); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}

	stored := storedRide(ride.StatusScheduled)
	m.rides.EXPECT().GetByIDForUpdate(gomock.Any(), "ride-1").Return(stored, nil)
	if _, err := svc.UpdateRide(context.Background(), riderActor("rider-1"), "ride-1", ports.UpdateRideInput{}); !errors.Is(err, ports.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for non-driver non-admin, got: %v", err)
	}
}

func TestUpdateRide_InvalidStatusIsValidationFailure(t *testing.T) {
	svc, m := newRideService(t)

	stored := storedRide(ride.StatusScheduled)
	m.rides.EXPECT().GetByIDForUpdate(gomock.Any(), "ride-1").Return(stored, nil)

	_, err := svc.UpdateRide(context.Background(), adminActor(), "ride-1", ports.UpdateRideInput{
		Status: strPtr("teleporting"),
	})

	var verr *ports.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got: %v", err)
	}
	if _, ok := verr.Fields["status"]; !ok {
		t.Fatalf("expected status field, got: %+v", verr.Fields)
	}
}
