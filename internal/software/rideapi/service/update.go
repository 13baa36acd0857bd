package service

import (
	"context"
	"errors"
	"time"

	"ride-management/internal/domain/ride"
	"ride-management/internal/domain/user"
	"ride-management/internal/general/logger"
	"ride-management/internal/ports"
)

// UpdateRide applies a partial update to a ride. Fields the current status
// marks read-only are silently reverted to their stored values, the lifecycle
// rule stamps timestamps and flips driver availability, and the ride plus the
// driver flag are committed in one transaction. The status-change message is
// published after commit, best effort.
func (s *rideService) UpdateRide(ctx context.Context, actor ports.AuthContext, rideID string, in ports.UpdateRideInput) (ports.UpdateRideResult, error) {
	ctx = logger.WithRideID(ctx, rideID)

	var (
		result    ports.UpdateRideResult
		statusMsg *ports.RideStatusMessage
	)

	err := s.uow.WithinTx(ctx, func(txCtx context.Context) error {
		stored, err := s.rideRepo.GetByIDForUpdate(txCtx, rideID)
		if err != nil {
			return err
		}

		if !actor.Role.IsAdmin() && actor.UserID != stored.DriverID {
			return ports.ErrUnauthorized
		}

		updated := *stored
		if err := applyPatch(&updated, in); err != nil {
			return err
		}

		// the stored status decides which fields are frozen, so reversion
		// runs before the transition stamps anything
		ignored := updated.RevertReadOnlyFields(stored)

		if updated.DriverID != stored.DriverID {
			driver, err := s.userRepo.GetByID(txCtx, updated.DriverID)
			if err != nil {
				if errors.Is(err, ports.ErrNotFound) {
					return ports.NewValidationError("driver_id", "unknown driver")
				}
				return err
			}
			if driver.Role != user.RoleDriver {
				return ports.NewValidationError("driver_id", "user is not a driver")
			}
		}

		effect := updated.ApplyStatusTransition(stored.Status, time.Now().UTC())

		if err := updated.Validate(); err != nil {
			return rideValidationError(err)
		}

		if err := s.rideRepo.UpdateRide(txCtx, &updated); err != nil {
			return err
		}

		switch effect {
		case ride.MarkDriverBusy:
			if err := s.userRepo.SetDriverAvailability(txCtx, updated.DriverID, false); err != nil {
				return err
			}
		case ride.MarkDriverAvailable:
			if err := s.userRepo.SetDriverAvailability(txCtx, updated.DriverID, true); err != nil {
				return err
			}
		}

		if updated.Status != stored.Status {
			event, err := ride.NewEvent(updated.ID, ride.StatusChangeDescription(updated.Status))
			if err != nil {
				return err
			}
			if err := s.rideEventRepo.Append(txCtx, event); err != nil {
				return err
			}

			statusMsg = &ports.RideStatusMessage{
				RideID:    updated.ID,
				RiderID:   updated.RiderID,
				DriverID:  updated.DriverID,
				OldStatus: stored.Status.String(),
				NewStatus: updated.Status.String(),
				Timestamp: time.Now().UTC(),
			}
		}

		result = ports.UpdateRideResult{
			Ride:          rideView(&updated),
			IgnoredFields: ignored,
		}
		return nil
	})
	if err != nil {
		var verr *ports.ValidationError
		if !errors.As(err, &verr) && !errors.Is(err, ports.ErrNotFound) && !errors.Is(err, ports.ErrUnauthorized) {
			s.logger.Error(ctx, "ride_update_failed", "Failed to update ride", err, nil)
		}
		return ports.UpdateRideResult{}, err
	}

	if statusMsg != nil && s.pub != nil {
		if err := s.pub.PublishRideStatus(ctx, *statusMsg); err != nil {
			s.logger.Error(ctx, "ride_status_publish_failed", "Failed to publish ride status", err, map[string]any{
				"new_status": statusMsg.NewStatus,
			})
		}
	}

	s.logger.Info(ctx, "ride_updated", "Ride updated", map[string]any{
		"status":         result.Ride.Status,
		"ignored_fields": result.IgnoredFields,
	})

	return result, nil
}

// applyPatch copies the non-nil input fields onto r. An unknown status is a
// validation failure.
func applyPatch(r *ride.Ride, in ports.UpdateRideInput) error {
	if in.DriverID != nil {
		r.DriverID = *in.DriverID
	}
	if in.Status != nil {
		status, err := ride.ParseStatus(*in.Status)
		if err != nil {
			return ports.NewValidationError("status", err.Error())
		}
		r.Status = status
	}
	if in.StartLocation != nil {
		r.StartLocation = *in.StartLocation
	}
	if in.EndLocation != nil {
		r.EndLocation = *in.EndLocation
	}
	if in.PickupLatitude != nil {
		r.PickupLatitude = *in.PickupLatitude
	}
	if in.PickupLongitude != nil {
		r.PickupLongitude = *in.PickupLongitude
	}
	if in.DropoffLatitude != nil {
		r.DropoffLatitude = *in.DropoffLatitude
	}
	if in.DropoffLongitude != nil {
		r.DropoffLongitude = *in.DropoffLongitude
	}
	if in.StartTime != nil {
		r.StartTime = in.StartTime.UTC()
	}
	return nil
}
