package ride

import (
	"errors"
	"slices"
	"testing"
)

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in   string
		want Status
	}{
		{"scheduled", StatusScheduled},
		{"  IN_PROGRESS  ", StatusInProgress},
		{"Completed", StatusCompleted},
	}
	for _, tc := range cases {
		got, err := ParseStatus(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseStatus(%q) = (%v, %v), want %v", tc.in, got, err, tc.want)
		}
	}

	for _, bad := range []string{"", "cancelled", "done"} {
		if _, err := ParseStatus(bad); !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("ParseStatus(%q) err = %v, want ErrInvalidStatus", bad, err)
		}
	}
}

func TestStatus_Terminal(t *testing.T) {
	if StatusScheduled.Terminal() || StatusInProgress.Terminal() {
		t.Error("only completed is terminal")
	}
	if !StatusCompleted.Terminal() {
		t.Error("completed must be terminal")
	}
}

func TestStatus_ReadOnlyFields(t *testing.T) {
	if got := StatusScheduled.ReadOnlyFields(); len(got) != 0 {
		t.Errorf("scheduled freezes %v, want nothing", got)
	}

	inProg := StatusInProgress.ReadOnlyFields()
	for _, f := range []string{"driver_id", "pickup_latitude", "pickup_longitude", "start_time"} {
		if !slices.Contains(inProg, f) {
			t.Errorf("in_progress should freeze %q: %v", f, inProg)
		}
	}

	done := StatusCompleted.ReadOnlyFields()
	if slices.Contains(done, "driver_id") {
		t.Error("completed should allow driver reassignment")
	}
	for _, f := range []string{"pickup_latitude", "pickup_longitude", "start_time"} {
		if !slices.Contains(done, f) {
			t.Errorf("completed should freeze %q: %v", f, done)
		}
	}
}
