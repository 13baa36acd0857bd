package service

import (
	"context"
	"errors"

	"ride-management/internal/domain/ride"
	"ride-management/internal/domain/user"
	"ride-management/internal/general/logger"
	"ride-management/internal/ports"
)

// CreateRide creates a new scheduled ride and appends the initial audit event.
// Non-admin callers can only create rides for themselves.
func (s *rideService) CreateRide(ctx context.Context, actor ports.AuthContext, in ports.CreateRideInput) (ports.RideView, error) {
	if in.RiderID == "" {
		in.RiderID = actor.UserID
	}
	if !actor.Role.IsAdmin() && in.RiderID != actor.UserID {
		return ports.RideView{}, ports.ErrUnauthorized
	}

	var view ports.RideView
	err := s.uow.WithinTx(ctx, func(txCtx context.Context) error {
		if _, err := s.userRepo.GetByID(txCtx, in.RiderID); err != nil {
			if errors.Is(err, ports.ErrNotFound) {
				return ports.NewValidationError("rider_id", "unknown rider")
			}
			return err
		}

		driver, err := s.userRepo.GetByID(txCtx, in.DriverID)
		if err != nil {
			if errors.Is(err, ports.ErrNotFound) {
				return ports.NewValidationError("driver_id", "unknown driver")
			}
			return err
		}
		if driver.Role != user.RoleDriver {
			return ports.NewValidationError("driver_id", "user is not a driver")
		}

		r, err := ride.NewRide(
			in.RiderID,
			in.DriverID,
			in.StartLocation,
			in.EndLocation,
			in.PickupLatitude,
			in.PickupLongitude,
			in.DropoffLatitude,
			in.DropoffLongitude,
			in.StartTime,
		)
		if err != nil {
			return rideValidationError(err)
		}

		if err := s.rideRepo.CreateRide(txCtx, r); err != nil {
			return err
		}

		event, err := ride.NewEvent(r.ID, ride.DescriptionRideCreated)
		if err != nil {
			return err
		}
		if err := s.rideEventRepo.Append(txCtx, event); err != nil {
			return err
		}

		view = rideView(r)
		return nil
	})
	if err != nil {
		var verr *ports.ValidationError
		if !errors.As(err, &verr) {
			s.logger.Error(ctx, "ride_create_failed", "Failed to create ride", err, map[string]any{
				"rider_id":  in.RiderID,
				"driver_id": in.DriverID,
			})
		}
		return ports.RideView{}, err
	}

	s.logger.Info(logger.WithRideID(ctx, view.ID), "ride_created", "Ride created", map[string]any{
		"rider_id":  view.RiderID,
		"driver_id": view.DriverID,
	})

	return view, nil
}

// rideValidationError maps entity constructor errors to per-field validation
// failures.
func rideValidationError(err error) error {
	switch {
	case errors.Is(err, ride.ErrRiderRequired):
		return ports.NewValidationError("rider_id", err.Error())
	case errors.Is(err, ride.ErrDriverRequired):
		return ports.NewValidationError("driver_id", err.Error())
	case errors.Is(err, ride.ErrInvalidLatitude):
		return ports.NewValidationError("latitude", err.Error())
	case errors.Is(err, ride.ErrInvalidLongitude):
		return ports.NewValidationError("longitude", err.Error())
	case errors.Is(err, ride.ErrInvalidStatus):
		return ports.NewValidationError("status", err.Error())
	case errors.Is(err, ride.ErrEndTimeWithoutEnd):
		return ports.NewValidationError("end_time", err.Error())
	default:
		return err
	}
}

// rideView projects a bare ride (no joined actor fields).
func rideView(r *ride.Ride) ports.RideView {
	return ports.RideView{
		ID:            r.ID,
		RiderID:       r.RiderID,
		DriverID:      r.DriverID,
		Status:        r.Status.String(),
		StartLocation: r.StartLocation,
		EndLocation:   r.EndLocation,
		PickupLat:     r.PickupLatitude,
		PickupLng:     r.PickupLongitude,
		DropoffLat:    r.DropoffLatitude,
		DropoffLng:    r.DropoffLongitude,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		DistanceKM:    r.DistanceKM,
	}
}

// rideRowView projects a listing row including the joined actor fields.
func rideRowView(row ports.RideRow) ports.RideView {
	view := rideView(row.Ride)
	view.RiderUsername = row.RiderUsername
	view.RiderEmail = row.RiderEmail
	view.DriverUsername = row.DriverUsername
	view.TodaysRideEvents = row.EventsLast24h
	return view
}
