// file: internals/middlewares/auth/scope.go
package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// IsOrganizationAdmin gates the admin route group.
func IsOrganizationAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocRole).(string)
		if role != "admin" && role != "owner" {
			return fiber.NewError(fiber.StatusForbidden, "Admin access required")
		}
		if _, err := OrganizationIDFromLocals(c); err != nil {
			return err
		}
		return c.Next()
	}
}
