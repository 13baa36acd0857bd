package service

import (
	"context"

	"ride-management/internal/domain/geo"
	"ride-management/internal/domain/ride"
	"ride-management/internal/ports"
)

// DefaultPageSize matches the listing page size of the public API.
const DefaultPageSize = 10

// ListRides applies the caller's scope, the optional predicates, and the
// requested ordering, and returns one page plus the total count. Non-admin
// callers only ever see rides where they are the rider; the restriction is
// part of the query, so counts and pages never leak foreign rides.
func (s *rideService) ListRides(ctx context.Context, actor ports.AuthContext, opts ports.ListRidesOptions) (ports.ListRidesResult, error) {
	filter, err := buildFilter(actor, opts)
	if err != nil {
		return ports.ListRidesResult{}, err
	}

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = DefaultPageSize
	}
	page := ports.Page{
		Offset: (opts.Page - 1) * opts.PageSize,
		Limit:  opts.PageSize,
	}

	var (
		count int
		rows  []ports.RideRow
	)
	err = s.uow.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		if count, err = s.rideRepo.CountRides(txCtx, filter); err != nil {
			return err
		}
		rows, err = s.rideRepo.ListRides(txCtx, filter, page)
		return err
	})
	if err != nil {
		s.logger.Error(ctx, "ride_list_failed", "Failed to list rides", err, nil)
		return ports.ListRidesResult{}, err
	}

	views := make([]ports.RideView, 0, len(rows))
	for _, row := range rows {
		views = append(views, rideRowView(row))
	}

	return ports.ListRidesResult{
		Count:    count,
		Page:     opts.Page,
		PageSize: opts.PageSize,
		Rides:    views,
	}, nil
}

// GetRide returns one ride with the rider/driver names attached. Admins, the
// ride's rider, and the ride's driver may read it.
func (s *rideService) GetRide(ctx context.Context, actor ports.AuthContext, rideID string) (ports.RideView, error) {
	var view ports.RideView
	err := s.uow.WithinTx(ctx, func(txCtx context.Context) error {
		r, err := s.rideRepo.GetByID(txCtx, rideID)
		if err != nil {
			return err
		}
		if err := canReadRide(actor, r); err != nil {
			return err
		}

		view = rideView(r)
		if rider, err := s.userRepo.GetByID(txCtx, r.RiderID); err == nil {
			view.RiderUsername = rider.Username
			view.RiderEmail = rider.Email
		}
		if driver, err := s.userRepo.GetByID(txCtx, r.DriverID); err == nil {
			view.DriverUsername = driver.Username
		}
		return nil
	})
	if err != nil {
		return ports.RideView{}, err
	}

	return view, nil
}

// buildFilter translates the raw listing options into a repository filter,
// with the authorization scope applied first.
func buildFilter(actor ports.AuthContext, opts ports.ListRidesOptions) (ports.RideFilter, error) {
	var filter ports.RideFilter

	if !actor.Role.IsAdmin() {
		filter.RiderID = actor.UserID
	}

	if opts.Status != "" {
		status, err := ride.ParseStatus(opts.Status)
		if err != nil {
			return ports.RideFilter{}, ports.NewValidationError("status", err.Error())
		}
		filter.Status = status
	}

	filter.RiderEmailContains = opts.RiderEmailContains

	switch ports.OrderBy(opts.OrderBy) {
	case ports.OrderByNone:
	case ports.OrderByPickupTime:
		filter.OrderBy = ports.OrderByPickupTime
	case ports.OrderByDistance:
		if opts.Latitude == nil || opts.Longitude == nil {
			return ports.RideFilter{}, ports.ErrMissingParameter
		}
		ref, err := geo.NewPoint(*opts.Latitude, *opts.Longitude)
		if err != nil {
			return ports.RideFilter{}, ports.NewValidationError("latitude/longitude", err.Error())
		}
		filter.OrderBy = ports.OrderByDistance
		filter.Reference = ref
	default:
		return ports.RideFilter{}, ports.NewValidationError("order_by", "must be one of pickup_time, distance")
	}

	return filter, nil
}

func canReadRide(actor ports.AuthContext, r *ride.Ride) error {
	if actor.Role.IsAdmin() || actor.UserID == r.RiderID || actor.UserID == r.DriverID {
		return nil
	}
	return ports.ErrUnauthorized
}
