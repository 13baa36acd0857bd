package ports

import (
	"context"
	"time"

	"ride-management/internal/domain/geo"
	"ride-management/internal/domain/ride"
	"ride-management/internal/domain/user"
)

// UnitOfWork interface is used to manage transactions across multiple repository operations.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository defines the methods for managing user data.
type UserRepository interface {
	CreateUser(ctx context.Context, u *user.User) error
	GetByID(ctx context.Context, id string) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	// SetDriverAvailability flips the is_available flag. Called in the same
	// transaction as the ride write it is a side effect of.
	SetDriverAvailability(ctx context.Context, driverID string, available bool) error
	// ListAvailableDrivers returns driver-role users with no in-progress ride.
	ListAvailableDrivers(ctx context.Context) ([]*user.User, error)
}

// OrderBy selects the ordering of a ride listing.
type OrderBy string

const (
	OrderByNone       OrderBy = ""
	OrderByPickupTime OrderBy = "pickup_time"
	OrderByDistance   OrderBy = "distance"
)

// RideFilter describes the predicates and ordering of a ride listing. All
// predicates commute and are applied before ordering.
type RideFilter struct {
	// RiderID, when non-empty, restricts the listing to rides where the
	// given user is the rider. This is the authorization scope and is
	// applied before any other predicate.
	RiderID string

	Status             ride.Status // optional exact match, "" means any
	RiderEmailContains string      // optional case-insensitive substring

	OrderBy   OrderBy
	Reference geo.Point // required iff OrderBy == OrderByDistance
}

// Page is a limit/offset pair. Limit <= 0 means no paging.
type Page struct {
	Offset int
	Limit  int
}

// RideRow is a hydrated listing row: the ride plus the joined actor fields
// the API and UI render.
type RideRow struct {
	Ride *ride.Ride

	RiderUsername  string
	RiderEmail     string
	DriverUsername string

	// EventsLast24h counts the ride's events from the last 24 hours.
	EventsLast24h int
}

// RideRepository defines the methods for managing ride data.
type RideRepository interface {
	CreateRide(ctx context.Context, r *ride.Ride) error
	GetByID(ctx context.Context, id string) (*ride.Ride, error)
	// GetByIDForUpdate locks the row so the previous status read for the
	// lifecycle rule cannot race a concurrent write.
	GetByIDForUpdate(ctx context.Context, id string) (*ride.Ride, error)
	UpdateRide(ctx context.Context, r *ride.Ride) error
	CountRides(ctx context.Context, f RideFilter) (int, error)
	// ListRides applies f's predicates and ordering (per the configured
	// distance strategy) and returns the requested page.
	ListRides(ctx context.Context, f RideFilter, page Page) ([]RideRow, error)
}

// RideEventRepository defines the methods for managing ride event data.
type RideEventRepository interface {
	Append(ctx context.Context, e *ride.Event) error
	ListByRide(ctx context.Context, rideID string) ([]*ride.Event, error)
	// TripsOverOneHour counts rides per driver per month whose dropoff event
	// came more than one hour after the first pickup event.
	TripsOverOneHour(ctx context.Context) ([]TripDurationRow, error)
}

// ReportCache caches the trip-duration report between admin requests.
type ReportCache interface {
	// GetTripDurationReport returns (nil, nil) on a cache miss.
	GetTripDurationReport(ctx context.Context) ([]TripDurationRow, error)
	SetTripDurationReport(ctx context.Context, rows []TripDurationRow, ttl time.Duration) error
}

// StatusPublisher broadcasts ride status changes to interested consumers
// (the web UI live feed). Publishing is best effort after commit.
type StatusPublisher interface {
	PublishRideStatus(ctx context.Context, msg RideStatusMessage) error
}

// RideStatusMessage is the wire payload published on every status change.
type RideStatusMessage struct {
	RideID    string    `json:"ride_id"`
	RiderID   string    `json:"rider_id"`
	DriverID  string    `json:"driver_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	Timestamp time.Time `json:"timestamp"`
}
