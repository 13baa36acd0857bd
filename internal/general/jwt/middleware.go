package jwt

import (
	"net/http"

	"ride-management/internal/domain/user"
)

// Middleware validates tokens, enforces RBAC, and injects claims into the
// request context. Shaped for chi's Use/With.
func Middleware(mgr *Manager, allowedRoles ...user.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := FromRequest(r)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			claims, err := mgr.ParseAndValidate(raw)
			if err != nil {
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			if len(allowedRoles) > 0 {
				if err := RoleAllowed(claims, allowedRoles...); err != nil {
					http.Error(w, err.Error(), http.StatusForbidden)
					return
				}
			}

			ctx := InjectClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireClaims extracts JWT claims from the request context.
func RequireClaims(r *http.Request) *Claims {
	c, _ := FromContext(r.Context())
	return c
}
