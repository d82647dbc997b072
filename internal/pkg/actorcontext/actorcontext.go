package actorcontext

import "github.com/gofiber/fiber/v2"

// ActorContext represents the authenticated actor for a request. Anonymous
// requests get the zero value with Authenticated = false.
type ActorContext struct {
	AdminID       uint   `json:"admin_id"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	Authenticated bool   `json:"authenticated"`
}

// GetActorContext retrieves the actor context from fiber context
// Returns an anonymous context if none is set
func GetActorContext(c *fiber.Ctx) ActorContext {
	if ctx := c.Locals(KeyActorContext); ctx != nil {
		return ctx.(ActorContext)
	}
	return ActorContext{Authenticated: false}
}

// IsAuthenticated checks if the current request carries a valid token
func IsAuthenticated(c *fiber.Ctx) bool {
	return GetActorContext(c).Authenticated
}

// IsAdmin checks if the current actor holds the admin role
func IsAdmin(c *fiber.Ctx) bool {
	actor := GetActorContext(c)
	return actor.Authenticated && actor.Role == "admin"
}

// GetAdminID returns the current actor's admin ID, or 0 if anonymous
func GetAdminID(c *fiber.Ctx) uint {
	return GetActorContext(c).AdminID
}
