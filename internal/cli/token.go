package cli

import (
	"fmt"
	"time"

	"ride-management/internal/domain/user"
	"ride-management/internal/general/jwt"
)

// GenerateUserToken mints a short-lived JWT for a seeded user. Dev helper for
// exercising the API with curl; do not call it from production code paths.
func GenerateUserToken(secret, userID, roleStr string) (string, jwt.Claims, error) {
	role, err := user.ParseRole(roleStr)
	if err != nil {
		return "", jwt.Claims{}, fmt.Errorf("invalid role %q: %w", roleStr, err)
	}

	mgr := jwt.NewManager(secret, 2*time.Hour)

	token, claims, err := mgr.IssueUserToken(userID, role)
	if err != nil {
		return "", jwt.Claims{}, fmt.Errorf("issue token: %w", err)
	}

	return token, *claims, nil
}
