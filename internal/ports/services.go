package ports

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"ride-management/internal/domain/user"
)

// ----- Error taxonomy -----

var (
	// ErrUnauthorized marks a non-privileged caller attempting an admin-only
	// operation. Surfaced as a permission error, never silently downgraded.
	ErrUnauthorized = errors.New("caller is not allowed to access this resource")

	// ErrMissingParameter marks distance ordering requested without a
	// reference coordinate. A client error, not a server fault.
	ErrMissingParameter = errors.New("order_by=distance requires latitude and longitude")

	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)

// ValidationError carries per-field validation failures to the caller.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// ----- Auth -----

// AuthContext identifies the caller of a service operation, extracted from
// the verified JWT claims at the transport boundary.
type AuthContext struct {
	UserID string
	Role   user.Role
}

// RegisterInput is the validated input to AuthService.Register.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     user.Role
}

// RegisterResult is returned by AuthService.Register.
type RegisterResult struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginInput is the input to AuthService.Login.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is returned by AuthService.Login.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
}

// AuthService exposes registration and login.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (RegisterResult, error)
	Login(ctx context.Context, in LoginInput) (LoginResult, error)
}

// ----- Rides -----

// CreateRideInput is the validated input to RideService.CreateRide.
type CreateRideInput struct {
	RiderID          string
	DriverID         string
	StartLocation    string
	EndLocation      string
	PickupLatitude   float64
	PickupLongitude  float64
	DropoffLatitude  float64
	DropoffLongitude float64
	StartTime        time.Time
}

// UpdateRideInput carries the mutable-field subset of an update request.
// Nil pointers mean "leave unchanged".
type UpdateRideInput struct {
	DriverID         *string
	Status           *string
	StartLocation    *string
	EndLocation      *string
	PickupLatitude   *float64
	PickupLongitude  *float64
	DropoffLatitude  *float64
	DropoffLongitude *float64
	StartTime        *time.Time
}

// RideView is the API/UI projection of a ride.
type RideView struct {
	ID             string     `json:"id"`
	RiderID        string     `json:"rider_id"`
	DriverID       string     `json:"driver_id"`
	RiderUsername  string     `json:"rider_username,omitempty"`
	RiderEmail     string     `json:"rider_email,omitempty"`
	DriverUsername string     `json:"driver_username,omitempty"`
	Status         string     `json:"status"`
	StartLocation  string     `json:"start_location"`
	EndLocation    string     `json:"end_location"`
	PickupLat      float64    `json:"pickup_latitude"`
	PickupLng      float64    `json:"pickup_longitude"`
	DropoffLat     float64    `json:"dropoff_latitude"`
	DropoffLng     float64    `json:"dropoff_longitude"`
	StartTime      time.Time  `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// DistanceKM is present only when the listing was ordered by distance.
	DistanceKM *float64 `json:"distance,omitempty"`
	// TodaysRideEvents counts the ride's events from the last 24 hours.
	TodaysRideEvents int `json:"todays_ride_events"`
}

// UpdateRideResult reports the persisted ride and which request fields were
// silently reverted by the read-only-field policy.
type UpdateRideResult struct {
	Ride          RideView `json:"ride"`
	IgnoredFields []string `json:"ignored_fields,omitempty"`
}

// ListRidesOptions are the raw query options of a listing request.
type ListRidesOptions struct {
	Status             string
	RiderEmailContains string
	OrderBy            string
	Latitude           *float64
	Longitude          *float64
	Page               int
	PageSize           int
}

// ListRidesResult is a page of rides plus paging metadata.
type ListRidesResult struct {
	Count    int        `json:"count"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
	Rides    []RideView `json:"results"`
}

// EventView is the API projection of a ride event.
type EventView struct {
	ID          string    `json:"id"`
	RideID      string    `json:"ride_id"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

// TripDurationRow is one row of the trips-over-one-hour report.
type TripDurationRow struct {
	Month        string `json:"month"`
	Driver       string `json:"driver"`
	CountOfTrips int    `json:"count_of_trips"`
}

// RideService exposes the boundary for ride management.
type RideService interface {
	CreateRide(ctx context.Context, actor AuthContext, in CreateRideInput) (RideView, error)
	GetRide(ctx context.Context, actor AuthContext, rideID string) (RideView, error)
	UpdateRide(ctx context.Context, actor AuthContext, rideID string, in UpdateRideInput) (UpdateRideResult, error)
	ListRides(ctx context.Context, actor AuthContext, opts ListRidesOptions) (ListRidesResult, error)
	ListRideEvents(ctx context.Context, actor AuthContext, rideID string) ([]EventView, error)
	TripDurationReport(ctx context.Context, actor AuthContext) ([]TripDurationRow, error)
	// ListAvailableDrivers backs the create/update forms: drivers with no
	// in-progress ride.
	ListAvailableDrivers(ctx context.Context) ([]user.User, error)
}
