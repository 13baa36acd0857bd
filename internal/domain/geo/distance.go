package geo

import (
	"errors"
	"math"
	"sort"
	"strings"

	"ride-management/internal/domain/ride"
)

// earthRadiusKM is the mean Earth radius used by the haversine formula.
const earthRadiusKM = 6371.0

// DistanceKM returns the great-circle distance in kilometers between ref and
// pickup, computed with the haversine formula.
func DistanceKM(ref, pickup Point) float64 {
	refLat := ref.Latitude * math.Pi / 180
	refLng := ref.Longitude * math.Pi / 180
	pickLat := pickup.Latitude * math.Pi / 180
	pickLng := pickup.Longitude * math.Pi / 180

	dlat := refLat - pickLat
	dlng := refLng - pickLng

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(pickLat)*math.Cos(refLat)*math.Sin(dlng/2)*math.Sin(dlng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}

// RankByDistance orders rides ascending by haversine distance from ref to
// each ride's pickup coordinate. The computed distance is attached to each
// ride as a transient annotation. Ties keep their original relative order.
func RankByDistance(ref Point, rides []*ride.Ride) []*ride.Ride {
	ranked := make([]*ride.Ride, len(rides))
	for i, r := range rides {
		d := DistanceKM(ref, Point{Latitude: r.PickupLatitude, Longitude: r.PickupLongitude})
		r.DistanceKM = &d
		ranked[i] = r
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].DistanceKM < *ranked[j].DistanceKM
	})

	return ranked
}

// Strategy selects how distance ordering is computed. It is fixed once at
// configuration time; queries never sniff the store vendor.
type Strategy string

const (
	// StrategyHaversine ranks in process with DistanceKM. Portable default.
	StrategyHaversine Strategy = "haversine"
	// StrategyPostGIS orders in SQL with ST_DistanceSphere. Requires the
	// PostGIS extension; must produce the same relative ordering as
	// StrategyHaversine for any pair of rides.
	StrategyPostGIS Strategy = "postgis"
)

var ErrInvalidStrategy = errors.New("invalid distance strategy")

// ParseStrategy normalizes and validates a strategy string. Empty input
// selects the haversine default.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case "", StrategyHaversine:
		return StrategyHaversine, nil
	case StrategyPostGIS:
		return StrategyPostGIS, nil
	default:
		return "", ErrInvalidStrategy
	}
}

// String returns the string representation of the Strategy.
func (s Strategy) String() string {
	return string(s)
}
