package jwt

import (
	"net/http"
	"testing"
	"time"

	"ride-management/internal/domain/user"
)

func TestIssueAndParseRoundtrip(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)

	token, claims, err := mgr.IssueUserToken("user-1", user.RoleDriver)
	if err != nil {
		t.Fatalf("IssueUserToken: %v", err)
	}
	if claims.Subject != "user-1" || claims.Role != user.RoleDriver {
		t.Fatalf("claims = %+v", claims)
	}

	parsed, err := mgr.ParseAndValidate(token)
	if err != nil {
		t.Fatalf("ParseAndValidate: %v", err)
	}
	if parsed.Subject != "user-1" || parsed.Role != user.RoleDriver {
		t.Errorf("parsed claims = %+v", parsed)
	}
}

func TestIssueUserToken_RejectsInvalidRole(t *testing.T) {
	mgr := NewManager("test-secret", time.Hour)

	if _, _, err := mgr.IssueUserToken("user-1", user.Role("root")); err == nil {
		t.Fatal("expected error for invalid role")
	}
}

func TestParseAndValidate_WrongSecret(t *testing.T) {
	token, _, err := NewManager("secret-a", time.Hour).IssueUserToken("user-1", user.RoleRider)
	if err != nil {
		t.Fatalf("IssueUserToken: %v", err)
	}

	if _, err := NewManager("secret-b", time.Hour).ParseAndValidate(token); err == nil {
		t.Fatal("expected signature verification to fail")
	}
}

func TestParseAndValidate_Expired(t *testing.T) {
	mgr := NewManager("test-secret", -time.Minute)

	token, _, err := mgr.IssueUserToken("user-1", user.RoleRider)
	if err != nil {
		t.Fatalf("IssueUserToken: %v", err)
	}

	if _, err := mgr.ParseAndValidate(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestRoleAllowed(t *testing.T) {
	claims := NewUserClaims("user-1", user.RoleDriver, time.Hour)

	if err := RoleAllowed(claims, user.RoleAdmin, user.RoleDriver); err != nil {
		t.Errorf("driver should be allowed: %v", err)
	}
	if err := RoleAllowed(claims, user.RoleAdmin); err == nil {
		t.Error("driver should not pass an admin-only check")
	}
}

func TestFromRequest(t *testing.T) {
	newReq := func() *http.Request {
		r, _ := http.NewRequest(http.MethodGet, "http://localhost/rides", nil)
		return r
	}

	t.Run("bearer header", func(t *testing.T) {
		r := newReq()
		r.Header.Set("Authorization", "Bearer abc.def.ghi")
		got, err := FromRequest(r)
		if err != nil || got != "abc.def.ghi" {
			t.Errorf("FromRequest = (%q, %v)", got, err)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		r := newReq()
		r.Header.Set("Authorization", "Token abc")
		if _, err := FromRequest(r); err == nil {
			t.Error("expected error for non-bearer header")
		}
	})

	t.Run("cookie fallback", func(t *testing.T) {
		r := newReq()
		r.AddCookie(&http.Cookie{Name: "auth_token", Value: "cookie-token"})
		got, err := FromRequest(r)
		if err != nil || got != "cookie-token" {
			t.Errorf("FromRequest = (%q, %v)", got, err)
		}
	})

	t.Run("query fallback", func(t *testing.T) {
		r, _ := http.NewRequest(http.MethodGet, "http://localhost/ws/rides?token=ws-token", nil)
		got, err := FromRequest(r)
		if err != nil || got != "ws-token" {
			t.Errorf("FromRequest = (%q, %v)", got, err)
		}
	})

	t.Run("nothing", func(t *testing.T) {
		if _, err := FromRequest(newReq()); err == nil {
			t.Error("expected error with no credentials")
		}
	})
}
