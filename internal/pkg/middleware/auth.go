package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ocl-logistics/ocl-backend/app/models"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/actorcontext"
)

// RequireAuthenticated ensures the request carries a valid token, any role.
func RequireAuthenticated(c *fiber.Ctx) error {
	if !actorcontext.GetActorContext(c).Authenticated {
		return unauthorized(c)
	}
	return c.Next()
}

// RequireAdmin ensures the actor holds the admin role; returns JSON 401/403.
func RequireAdmin(c *fiber.Ctx) error {
	actor := actorcontext.GetActorContext(c)
	if !actor.Authenticated {
		return unauthorized(c)
	}
	if actor.Role != models.ROLE_ADMIN {
		return forbidden(c)
	}
	return c.Next()
}

// RequireStaff ensures the actor holds a back-office role (admin or
// office-admin). Guards the cold-call sheets and shipment records.
func RequireStaff(c *fiber.Ctx) error {
	actor := actorcontext.GetActorContext(c)
	if !actor.Authenticated {
		return unauthorized(c)
	}
	if actor.Role != models.ROLE_ADMIN && actor.Role != models.ROLE_OFFICE_ADMIN {
		return forbidden(c)
	}
	return c.Next()
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   "authentication required",
	})
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"success": false,
		"error":   "insufficient role",
	})
}
