package geo

import (
	"errors"
	"math"
	"testing"

	"ride-management/internal/domain/ride"
)

var (
	downtownSF = Point{Latitude: 37.7749, Longitude: -122.4194}
	oakland    = Point{Latitude: 37.8044, Longitude: -122.2712}
)

func TestDistanceKM(t *testing.T) {
	if d := DistanceKM(downtownSF, downtownSF); d != 0 {
		t.Errorf("distance to self = %v, want 0", d)
	}

	// SF downtown to Oakland is roughly 13.4 km great-circle
	d := DistanceKM(downtownSF, oakland)
	if d < 12 || d > 15 {
		t.Errorf("SF-Oakland distance = %v km, want ~13.4", d)
	}

	// symmetric
	if back := DistanceKM(oakland, downtownSF); math.Abs(back-d) > 1e-9 {
		t.Errorf("asymmetric distance: %v vs %v", d, back)
	}
}

func pickupAt(id string, lat, lng float64) *ride.Ride {
	return &ride.Ride{ID: id, PickupLatitude: lat, PickupLongitude: lng}
}

func TestRankByDistance(t *testing.T) {
	far := pickupAt("far", oakland.Latitude, oakland.Longitude)
	near := pickupAt("near", 37.7750, -122.4195)
	mid := pickupAt("mid", 37.79, -122.40)

	ranked := RankByDistance(downtownSF, []*ride.Ride{far, near, mid})

	wantOrder := []string{"near", "mid", "far"}
	for i, id := range wantOrder {
		if ranked[i].ID != id {
			t.Fatalf("ranked[%d] = %s, want %s", i, ranked[i].ID, id)
		}
	}

	for _, r := range ranked {
		if r.DistanceKM == nil {
			t.Fatalf("ride %s missing distance annotation", r.ID)
		}
	}
	if *ranked[0].DistanceKM > 0.1 {
		t.Errorf("near distance = %v km, want < 0.1", *ranked[0].DistanceKM)
	}
	if *ranked[2].DistanceKM < 10 || *ranked[2].DistanceKM > 20 {
		t.Errorf("far distance = %v km, want 10..20", *ranked[2].DistanceKM)
	}
}

func TestRankByDistance_TiesKeepOrder(t *testing.T) {
	a := pickupAt("a", oakland.Latitude, oakland.Longitude)
	b := pickupAt("b", oakland.Latitude, oakland.Longitude)
	c := pickupAt("c", oakland.Latitude, oakland.Longitude)

	ranked := RankByDistance(downtownSF, []*ride.Ride{a, b, c})

	for i, id := range []string{"a", "b", "c"} {
		if ranked[i].ID != id {
			t.Fatalf("tie order broken: ranked[%d] = %s, want %s", i, ranked[i].ID, id)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in   string
		want Strategy
	}{
		{"", StrategyHaversine},
		{"haversine", StrategyHaversine},
		{"  PostGIS  ", StrategyPostGIS},
	}
	for _, tc := range cases {
		got, err := ParseStrategy(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseStrategy(%q) = (%v, %v), want %v", tc.in, got, err, tc.want)
		}
	}

	if _, err := ParseStrategy("euclidean"); !errors.Is(err, ErrInvalidStrategy) {
		t.Errorf("err = %v, want ErrInvalidStrategy", err)
	}
}

func TestNewPoint(t *testing.T) {
	if _, err := NewPoint(91, 0); !errors.Is(err, ErrInvalidLatitude) {
		t.Errorf("err = %v, want ErrInvalidLatitude", err)
	}
	if _, err := NewPoint(0, 181); !errors.Is(err, ErrInvalidLongitude) {
		t.Errorf("err = %v, want ErrInvalidLongitude", err)
	}
	p, err := NewPoint(37.7749, -122.4194)
	if err != nil || p != downtownSF {
		t.Errorf("NewPoint = (%v, %v)", p, err)
	}
}
