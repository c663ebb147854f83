// file: internals/middlewares/auth/jwt_auth.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Locals keys hydrated by AuthJWT.
const (
	LocUserID         = "user_id"
	LocOrganizationID = "organization_id"
	LocClubID         = "club_id"
	LocRole           = "role"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // use access_token cookie when no Bearer header
}

// AuthJWT verifies the bearer token and hydrates tenant-scope locals
// (user_id, organization_id, optional club_id, role). Session issuance
// lives in an external service; this only consumes its tokens.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)

	return func(c *fiber.Ctx) error {
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" || secret == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals("jwt_claims", claims)

		switch {
		case strClaim(claims, "id") != "":
			c.Locals(LocUserID, strClaim(claims, "id"))
		case strClaim(claims, "sub") != "":
			c.Locals(LocUserID, strClaim(claims, "sub"))
		case strClaim(claims, "user_id") != "":
			c.Locals(LocUserID, strClaim(claims, "user_id"))
		}

		if v := strClaim(claims, "organization_id"); v != "" {
			c.Locals(LocOrganizationID, v)
		}
		if v := strClaim(claims, "club_id"); v != "" {
			c.Locals(LocClubID, v)
		}
		if v := strClaim(claims, "role"); v != "" {
			c.Locals(LocRole, strings.ToLower(v))
		} else {
			c.Locals(LocRole, "user")
		}

		return c.Next()
	}
}

func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// OrganizationIDFromLocals returns the tenant organization id set by AuthJWT.
func OrganizationIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	v, _ := c.Locals(LocOrganizationID).(string)
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Organization scope missing")
	}
	return id, nil
}

// ClubIDFromLocals returns the optional club scope; uuid.Nil when absent.
func ClubIDFromLocals(c *fiber.Ctx) uuid.UUID {
	v, _ := c.Locals(LocClubID).(string)
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil
	}
	return id
}
