package postgres

import (
	"context"

	"ride-management/internal/domain/ride"
	"ride-management/internal/ports"
)

// RideEventRepo persists the append-only ride audit trail.
type RideEventRepo struct{}

// NewRideEventRepo constructs a new RideEventRepo.
func NewRideEventRepo() ports.RideEventRepository {
	return &RideEventRepo{}
}

// Append inserts a new event row. Events are never updated or deleted.
func (repo *RideEventRepo) Append(ctx context.Context, e *ride.Event) error {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return err
	}

	return tx.QueryRow(ctx, `
		INSERT INTO ride_events (ride_id, timestamp, description)
		VALUES ($1, $2, $3)
		RETURNING id
	`, e.RideID, e.Timestamp, e.Description).Scan(&e.ID)
}

// ListByRide returns a ride's events in chronological order.
func (repo *RideEventRepo) ListByRide(ctx context.Context, rideID string) ([]*ride.Event, error) {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT id, ride_id, timestamp, description
		FROM ride_events
		WHERE ride_id = $1
		ORDER BY timestamp ASC, id
	`, rideID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*ride.Event
	for rows.Next() {
		var e ride.Event
		if err := rows.Scan(&e.ID, &e.RideID, &e.Timestamp, &e.Description); err != nil {
			return nil, err
		}
		events = append(events, &e)
	}

	return events, rows.Err()
}

// TripsOverOneHour aggregates, per driver per month, the rides whose dropoff
// event landed more than one hour after the first pickup event. Months are
// rendered as YYYY-MM of the dropoff timestamp.
func (repo *RideEventRepo) TripsOverOneHour(ctx context.Context) ([]ports.TripDurationRow, error) {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `
		SELECT to_char(date_trunc('month', dropoff.timestamp), 'YYYY-MM') AS month,
		       drv.username AS driver,
		       COUNT(*) AS count_of_trips
		FROM ride_events dropoff
		JOIN rides r ON r.id = dropoff.ride_id
		JOIN users drv ON drv.id = r.driver_id
		WHERE dropoff.description = $1
		  AND dropoff.timestamp - (
		      SELECT MIN(pickup.timestamp)
		      FROM ride_events pickup
		      WHERE pickup.ride_id = dropoff.ride_id
		        AND pickup.description = $2
		  ) > INTERVAL '1 hour'
		GROUP BY month, driver
		ORDER BY month, driver
	`, ride.DescriptionDropoff, ride.DescriptionPickup)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []ports.TripDurationRow
	for rows.Next() {
		var row ports.TripDurationRow
		if err := rows.Scan(&row.Month, &row.Driver, &row.CountOfTrips); err != nil {
			return nil, err
		}
		report = append(report, row)
	}

	return report, rows.Err()
}
