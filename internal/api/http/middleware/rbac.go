package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/petscare/petscare_backend/pkg/authorize"
	jwttoken "github.com/petscare/petscare_backend/pkg/token"
)

// RequirePermission checks if the authenticated user has the given
// permission. Must run after AuthRequired.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := jwttoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
