package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/auth/domain"
	"github.com/limitlessinfotechsolution/Limitless-sub004/internal/auth/dto"
	autherror "github.com/limitlessinfotechsolution/Limitless-sub004/internal/errors"
)

const identityLocal = "identity"

// RequireRole guards a route behind a minimum role. The caller's role is
// re-derived from the account row on every request, so deactivating or
// demoting an account revokes access immediately even while its session
// token is still cryptographically valid.
func (h *AuthHandler) RequireRole(minRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionToken := c.Cookies(SessionCookieName)
		if sessionToken == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}

		identity, err := h.authService.ResolveIdentity(c.UserContext(), sessionToken)
		if err != nil {
			if errors.Is(err, autherror.ErrUnauthorized) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Unauthorized",
				})
			}
			log.Printf("identity resolution error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		}

		if domain.RoleRank(identity.Role) < domain.RoleRank(minRole) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Insufficient permissions",
			})
		}

		c.Locals(identityLocal, identity)
		return c.Next()
	}
}

// CallerIdentity returns the identity stored by RequireRole.
func CallerIdentity(c *fiber.Ctx) dto.Identity {
	if identity, ok := c.Locals(identityLocal).(*dto.Identity); ok {
		return *identity
	}
	return dto.Identity{}
}
