package ride

import (
	"errors"
	"strings"
	"time"
)

// Ride is the domain entity corresponding to the `rides` table.
type Ride struct {
	// Identity & audit
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Actors
	RiderID  string
	DriverID string

	// Core state
	Status Status

	// Route
	StartLocation    string
	EndLocation      string
	PickupLatitude   float64
	PickupLongitude  float64
	DropoffLatitude  float64
	DropoffLongitude float64

	// Lifecycle timestamps
	StartTime time.Time
	EndTime   *time.Time // nil until completed

	// DistanceKM is a transient annotation set when a query orders by
	// distance from a reference point. Never persisted.
	DistanceKM *float64
}

var (
	ErrRiderRequired     = errors.New("rider is required")
	ErrDriverRequired    = errors.New("driver is required")
	ErrInvalidLatitude   = errors.New("latitude must be between -90 and 90")
	ErrInvalidLongitude  = errors.New("longitude must be between -180 and 180")
	ErrEndTimeWithoutEnd = errors.New("end_time must be null while the ride is not completed")
)

// NewRide creates a new ride in scheduled status.
func NewRide(riderID, driverID, startLocation, endLocation string,
	pickupLat, pickupLng, dropoffLat, dropoffLng float64, startTime time.Time) (*Ride, error) {

	now := time.Now().UTC()
	r := &Ride{
		CreatedAt:        now,
		UpdatedAt:        now,
		RiderID:          strings.TrimSpace(riderID),
		DriverID:         strings.TrimSpace(driverID),
		Status:           StatusScheduled,
		StartLocation:    strings.TrimSpace(startLocation),
		EndLocation:      strings.TrimSpace(endLocation),
		PickupLatitude:   pickupLat,
		PickupLongitude:  pickupLng,
		DropoffLatitude:  dropoffLat,
		DropoffLongitude: dropoffLng,
		StartTime:        startTime.UTC(),
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate checks invariants of the Ride entity.
func (r *Ride) Validate() error {
	if r.RiderID == "" {
		return ErrRiderRequired
	}
	if r.DriverID == "" {
		return ErrDriverRequired
	}
	if !r.Status.Valid() {
		return ErrInvalidStatus
	}
	if err := validateCoordinate(r.PickupLatitude, r.PickupLongitude); err != nil {
		return err
	}
	if err := validateCoordinate(r.DropoffLatitude, r.DropoffLongitude); err != nil {
		return err
	}
	if r.EndTime != nil && r.Status != StatusCompleted {
		return ErrEndTimeWithoutEnd
	}
	return nil
}

func validateCoordinate(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return ErrInvalidLatitude
	}
	if lng < -180 || lng > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

// touch sets UpdatedAt to now (UTC).
func (r *Ride) touch() {
	r.UpdatedAt = time.Now().UTC()
}
