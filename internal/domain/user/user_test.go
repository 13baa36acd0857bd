package user

import (
	"errors"
	"testing"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("  ann  ", " ann@rides.test ", RoleDriver, "hash")
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if u.Username != "ann" || u.Email != "ann@rides.test" {
		t.Errorf("user = %+v, want trimmed fields", u)
	}
	if !u.IsAvailable {
		t.Error("new users start available")
	}
}

func TestNewUser_Validation(t *testing.T) {
	cases := []struct {
		name     string
		username string
		email    string
		role     Role
		hash     string
		wantErr  error
	}{
		{"missing username", "", "a@b.test", RoleRider, "hash", ErrUsernameRequired},
		{"bad email", "ann", "not-an-email", RoleRider, "hash", ErrInvalidEmail},
		{"bad role", "ann", "a@b.test", Role("root"), "hash", ErrInvalidRole},
		{"missing hash", "ann", "a@b.test", RoleRider, "  ", ErrEmptyPasswordHash},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUser(tc.username, tc.email, tc.role, tc.hash)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	cases := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{" Driver ", RoleDriver},
		{"RIDER", RoleRider},
	}
	for _, tc := range cases {
		got, err := ParseRole(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseRole(%q) = (%v, %v), want %v", tc.in, got, err, tc.want)
		}
	}

	if _, err := ParseRole("passenger"); !errors.Is(err, ErrInvalidRole) {
		t.Errorf("err = %v, want ErrInvalidRole", err)
	}
}
