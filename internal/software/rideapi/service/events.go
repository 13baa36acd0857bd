package service

import (
	"context"

	"ride-management/internal/domain/ride"
	"ride-management/internal/ports"
)

// ListRideEvents returns the ride's audit trail in chronological order. Read
// access follows the same rule as GetRide.
func (s *rideService) ListRideEvents(ctx context.Context, actor ports.AuthContext, rideID string) ([]ports.EventView, error) {
	var events []*ride.Event
	err := s.uow.WithinTx(ctx, func(txCtx context.Context) error {
		r, err := s.rideRepo.GetByID(txCtx, rideID)
		if err != nil {
			return err
		}
		if err := canReadRide(actor, r); err != nil {
			return err
		}

		events, err = s.rideEventRepo.ListByRide(txCtx, rideID)
		return err
	})
	if err != nil {
		return nil, err
	}

	views := make([]ports.EventView, 0, len(events))
	for _, e := range events {
		views = append(views, ports.EventView{
			ID:          e.ID,
			RideID:      e.RideID,
			Timestamp:   e.Timestamp,
			Description: e.Description,
		})
	}

	return views, nil
}
