package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"ride-management/internal/domain/geo"
	"ride-management/internal/domain/ride"
	"ride-management/internal/ports"
)

// RideRepo persists rides using pgx and plain SQL. The distance strategy is
// fixed at construction time and never re-examined per query.
type RideRepo struct {
	strategy geo.Strategy
}

// NewRideRepo constructs a new RideRepo with the given distance strategy.
func NewRideRepo(strategy geo.Strategy) ports.RideRepository {
	return &RideRepo{strategy: strategy}
}

// CreateRide inserts a new ride row.
func (repo *RideRepo) CreateRide(ctx context.Context, r *ride.Ride) error {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return err
	}

	return tx.QueryRow(ctx, `
		INSERT INTO rides (
			rider_id, driver_id, status, start_location, end_location,
			pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
			start_time, end_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`,
		r.RiderID,
		r.DriverID,
		r.Status.String(),
		r.StartLocation,
		r.EndLocation,
		r.PickupLatitude,
		r.PickupLongitude,
		r.DropoffLatitude,
		r.DropoffLongitude,
		r.StartTime,
		r.EndTime,
	).Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
}

// GetByID fetches a ride by primary key.
func (repo *RideRepo) GetByID(ctx context.Context, id string) (*ride.Ride, error) {
	return repo.getByID(ctx, id, false)
}

// GetByIDForUpdate fetches a ride by primary key and locks the row so the
// previous status read cannot race a concurrent write.
func (repo *RideRepo) GetByIDForUpdate(ctx context.Context, id string) (*ride.Ride, error) {
	return repo.getByID(ctx, id, true)
}

func (repo *RideRepo) getByID(ctx context.Context, id string, forUpdate bool) (*ride.Ride, error) {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := rideSelect + ` WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var (
		out        ride.Ride
		statusText string
	)
	err = tx.QueryRow(ctx, query, id).Scan(
		&out.ID, &out.CreatedAt, &out.UpdatedAt,
		&out.RiderID, &out.DriverID, &statusText,
		&out.StartLocation, &out.EndLocation,
		&out.PickupLatitude, &out.PickupLongitude,
		&out.DropoffLatitude, &out.DropoffLongitude,
		&out.StartTime, &out.EndTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	out.Status = ride.Status(statusText)

	return &out, nil
}

// UpdateRide writes all mutable columns of a ride row.
func (repo *RideRepo) UpdateRide(ctx context.Context, r *ride.Ride) error {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
		UPDATE rides
		SET driver_id = $1,
		    status = $2,
		    start_location = $3,
		    end_location = $4,
		    pickup_latitude = $5,
		    pickup_longitude = $6,
		    dropoff_latitude = $7,
		    dropoff_longitude = $8,
		    start_time = $9,
		    end_time = $10,
		    updated_at = now()
		WHERE id = $11
	`,
		r.DriverID,
		r.Status.String(),
		r.StartLocation,
		r.EndLocation,
		r.PickupLatitude,
		r.PickupLongitude,
		r.DropoffLatitude,
		r.DropoffLongitude,
		r.StartTime,
		r.EndTime,
		r.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}

	return nil
}

// CountRides counts rides matching the filter's predicates. Ordering and
// paging do not affect the count.
func (repo *RideRepo) CountRides(ctx context.Context, f ports.RideFilter) (int, error) {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return 0, err
	}

	where, args := buildRideWhere(f)

	var count int
	err = tx.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM rides r
		JOIN users rider ON rider.id = r.rider_id
	`+where, args...).Scan(&count)

	return count, err
}

// ListRides applies the filter's predicates, orders per the configured
// strategy, and returns the requested page. Distance ordering annotates each
// ride with the computed kilometers.
func (repo *RideRepo) ListRides(ctx context.Context, f ports.RideFilter, page ports.Page) ([]ports.RideRow, error) {
	tx, err := MustTxFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if f.OrderBy == ports.OrderByDistance && repo.strategy == geo.StrategyHaversine {
		return repo.listRankedInProcess(ctx, tx, f, page)
	}

	where, args := buildRideWhere(f)
	query := rideRowSelect

	switch f.OrderBy {
	case ports.OrderByDistance:
		// PostGIS path: annotate and order in SQL. ST_DistanceSphere
		// returns meters; the API reports kilometers.
		args = append(args, f.Reference.Longitude, f.Reference.Latitude)
		query += fmt.Sprintf(`,
		       ST_DistanceSphere(
		           ST_MakePoint(r.pickup_longitude, r.pickup_latitude),
		           ST_MakePoint($%d, $%d)
		       ) / 1000.0 AS distance_km`, len(args)-1, len(args))
		query += rideRowFrom + where + `
		ORDER BY distance_km ASC, r.id`
	case ports.OrderByPickupTime:
		query += rideRowFrom + where + `
		ORDER BY r.start_time ASC, r.id`
	default:
		query += rideRowFrom + where + `
		ORDER BY r.created_at DESC, r.id`
	}

	if page.Limit > 0 {
		args = append(args, page.Limit, page.Offset)
		query += fmt.Sprintf(`
		LIMIT $%d OFFSET $%d`, len(args)-1, len(args))
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	withDistance := f.OrderBy == ports.OrderByDistance
	var out []ports.RideRow
	for rows.Next() {
		row, err := scanRideRow(rows, withDistance)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}

	return out, rows.Err()
}

// listRankedInProcess fetches every matching row, ranks by haversine distance
// in memory, and pages the ranked result. The fetch order is fixed so ties
// keep a stable relative order across requests.
func (repo *RideRepo) listRankedInProcess(ctx context.Context, tx pgx.Tx, f ports.RideFilter, page ports.Page) ([]ports.RideRow, error) {
	where, args := buildRideWhere(f)

	rows, err := tx.Query(ctx, rideRowSelect+rideRowFrom+where+`
		ORDER BY r.created_at DESC, r.id`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all []ports.RideRow
	for rows.Next() {
		row, err := scanRideRow(rows, false)
		if err != nil {
			return nil, err
		}
		all = append(all, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rides := make([]*ride.Ride, len(all))
	byRide := make(map[*ride.Ride]ports.RideRow, len(all))
	for i, row := range all {
		rides[i] = row.Ride
		byRide[row.Ride] = row
	}

	ranked := geo.RankByDistance(f.Reference, rides)

	out := make([]ports.RideRow, len(ranked))
	for i, r := range ranked {
		out[i] = byRide[r]
	}

	if page.Limit <= 0 {
		return out, nil
	}
	if page.Offset >= len(out) {
		return nil, nil
	}
	end := page.Offset + page.Limit
	if end > len(out) {
		end = len(out)
	}

	return out[page.Offset:end], nil
}

// --- helpers ---

const rideSelect = `
	SELECT id, created_at, updated_at, rider_id, driver_id, status,
	       start_location, end_location,
	       pickup_latitude, pickup_longitude, dropoff_latitude, dropoff_longitude,
	       start_time, end_time
	FROM rides`

const rideRowSelect = `
	SELECT r.id, r.created_at, r.updated_at, r.rider_id, r.driver_id, r.status,
	       r.start_location, r.end_location,
	       r.pickup_latitude, r.pickup_longitude, r.dropoff_latitude, r.dropoff_longitude,
	       r.start_time, r.end_time,
	       rider.username, rider.email, drv.username,
	       (SELECT COUNT(*) FROM ride_events e
	        WHERE e.ride_id = r.id AND e.timestamp >= now() - INTERVAL '24 hours')`

const rideRowFrom = `
	FROM rides r
	JOIN users rider ON rider.id = r.rider_id
	JOIN users drv ON drv.id = r.driver_id`

// buildRideWhere renders the filter's predicates into a WHERE clause. The
// authorization scope (RiderID) is a predicate like any other and always
// intersects with the rest.
func buildRideWhere(f ports.RideFilter) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	if f.RiderID != "" {
		args = append(args, f.RiderID)
		clauses = append(clauses, fmt.Sprintf("r.rider_id = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status.String())
		clauses = append(clauses, fmt.Sprintf("r.status = $%d", len(args)))
	}
	if f.RiderEmailContains != "" {
		args = append(args, f.RiderEmailContains)
		clauses = append(clauses, fmt.Sprintf("rider.email ILIKE '%%' || $%d || '%%'", len(args)))
	}

	if len(clauses) == 0 {
		return "", nil
	}

	return `
	WHERE ` + strings.Join(clauses, "\n	  AND "), args
}

func scanRideRow(rows pgx.Rows, withDistance bool) (ports.RideRow, error) {
	var (
		out        ride.Ride
		row        ports.RideRow
		statusText string
	)

	dest := []any{
		&out.ID, &out.CreatedAt, &out.UpdatedAt,
		&out.RiderID, &out.DriverID, &statusText,
		&out.StartLocation, &out.EndLocation,
		&out.PickupLatitude, &out.PickupLongitude,
		&out.DropoffLatitude, &out.DropoffLongitude,
		&out.StartTime, &out.EndTime,
		&row.RiderUsername, &row.RiderEmail, &row.DriverUsername,
		&row.EventsLast24h,
	}
	if withDistance {
		out.DistanceKM = new(float64)
		dest = append(dest, out.DistanceKM)
	}

	if err := rows.Scan(dest...); err != nil {
		return ports.RideRow{}, err
	}
	out.Status = ride.Status(statusText)
	row.Ride = &out

	return row, nil
}
