package service

import (
	"context"
	"time"

	"ride-management/internal/domain/user"
	"ride-management/internal/ports"
)

// reportTTL bounds how stale the cached trip-duration report may get.
const reportTTL = 5 * time.Minute

// TripDurationReport returns, per driver per month, the number of rides whose
// dropoff event came more than one hour after the first pickup event. Admin
// only; served from Redis when fresh.
func (s *rideService) TripDurationReport(ctx context.Context, actor ports.AuthContext) ([]ports.TripDurationRow, error) {
	if !actor.Role.IsAdmin() {
		return nil, ports.ErrUnauthorized
	}

	if s.reportCache != nil {
		rows, err := s.reportCache.GetTripDurationReport(ctx)
		if err != nil {
			// cache trouble must not take the report down
			s.logger.Error(ctx, "report_cache_get_failed", "Failed to read report cache", err, nil)
		} else if rows != nil {
			return rows, nil
		}
	}

	var rows []ports.TripDurationRow
	err := s.uow.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		rows, err = s.rideEventRepo.TripsOverOneHour(txCtx)
		return err
	})
	if err != nil {
		s.logger.Error(ctx, "report_failed", "Failed to build trip duration report", err, nil)
		return nil, err
	}

	if s.reportCache != nil && len(rows) > 0 {
		if err := s.reportCache.SetTripDurationReport(ctx, rows, reportTTL); err != nil {
			s.logger.Error(ctx, "report_cache_set_failed", "Failed to write report cache", err, nil)
		}
	}

	return rows, nil
}

// ListAvailableDrivers backs the create/update forms.
func (s *rideService) ListAvailableDrivers(ctx context.Context) ([]user.User, error) {
	var drivers []*user.User
	err := s.uow.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		drivers, err = s.userRepo.ListAvailableDrivers(txCtx)
		return err
	})
	if err != nil {
		return nil, err
	}

	out := make([]user.User, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, *d)
	}

	return out, nil
}
