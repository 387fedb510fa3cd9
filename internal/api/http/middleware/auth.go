package middleware

import (
	"github.com/gofiber/fiber/v3"

	jwttoken "github.com/petscare/petscare_backend/pkg/token"
)

// AuthRequired verifies the bearer token and stores its claims in locals.
func AuthRequired(mgr *jwttoken.Manager) fiber.Handler {
	return jwttoken.FiberAuth(mgr)
}

// RequireRole allows only the named roles past. Used where RBAC resource
// rules are too coarse, e.g. the admin-only appointment listing.
func RequireRole(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := jwttoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		for _, r := range roles {
			if claims.Role == r {
				return c.Next()
			}
		}
		return fiber.ErrForbidden
	}
}
