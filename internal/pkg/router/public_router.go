package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ocl-logistics/ocl-backend/app/controllers"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/middleware"
)

type PublicRouter struct {
}

func (h PublicRouter) InstallRouter(app *fiber.App) {
	// Resolve the actor globally as the first middleware; public routes run
	// anonymously when no token is present.
	app.Use(middleware.ActorContextMiddleware)

	// Initialize controllers with their repositories
	controllers.InitializeAuthController()
	controllers.InitializeNewsController()
	controllers.InitializeColdCallController()
	controllers.InitializeSubscriberController()
	controllers.InitializeShipmentController()
	controllers.InitializeSiteController()

	app.Get("/up", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "data": "ok"})
	})
}

func NewPublicRouter() *PublicRouter {
	return &PublicRouter{}
}
