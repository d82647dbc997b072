package middleware

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ocl-logistics/ocl-backend/app/models"
	"github.com/ocl-logistics/ocl-backend/app/repository"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/actorcontext"
)

// ActorContextMiddleware resolves the bearer token, if one is present, and
// attaches the actor to the request context. It never rejects: public reads
// run anonymously, and the guards below enforce roles where required. An
// invalid token is treated as anonymous rather than an error so that stale
// tokens cannot break public pages.
func ActorContextMiddleware(c *fiber.Ctx) error {
	token := extractTokenFromHeader(c)
	if token == "" {
		return c.Next()
	}

	repo := repository.GetGlobalFactory().GetAdminRepository()
	admin, err := repo.GetByTokenHash(models.HashAPIToken(token))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("token lookup failed: %v", err)
		}
		return c.Next()
	}

	c.Locals(actorcontext.KeyActorContext, actorcontext.ActorContext{
		AdminID:       admin.ID,
		Name:          admin.Name,
		Role:          admin.Role,
		Authenticated: true,
	})
	c.Locals(actorcontext.KeyAdminID, admin.ID)
	c.Locals(actorcontext.KeyRole, admin.Role)

	return c.Next()
}

func extractTokenFromHeader(c *fiber.Ctx) string {
	token := strings.TrimSpace(c.Get("X-API-Token"))
	if token != "" {
		return token
	}
	auth := strings.TrimSpace(c.Get("Authorization"))
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}
