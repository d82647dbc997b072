package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ocl-logistics/ocl-backend/app/controllers"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/middleware"
)

type ApiRouter struct {
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"data":    "OCL backend API",
		})
	})

	h.registerAuthRoutes(api)
	h.registerNewsRoutes(api)
	h.registerColdCallRoutes(api)
	h.registerNewsletterRoutes(api)
	h.registerShipmentRoutes(api)
	h.registerSiteRoutes(api)
}

func (h ApiRouter) registerAuthRoutes(api fiber.Router) {
	ac := controllers.GetAuthController()

	auth := api.Group("/auth")
	auth.Post("/login", ac.HandleLogin)
	auth.Get("/me", middleware.RequireAuthenticated, ac.HandleMe)
}

func (h ApiRouter) registerNewsRoutes(api fiber.Router) {
	nc := controllers.GetNewsController()

	news := api.Group("/ocl-news")
	// static segments before the :id catch-all
	news.Get("/featured", nc.HandleFeatured)
	news.Get("/categories/list", nc.HandleCategories)
	news.Get("/slug/:slug", nc.HandleGetBySlug)
	news.Get("/", nc.HandleList)
	news.Get("/:id", nc.HandleGetByID)

	news.Post("/", middleware.RequireAdmin, nc.HandleCreate)
	news.Put("/:id", middleware.RequireAdmin, nc.HandleUpdate)
	news.Delete("/:id", middleware.RequireAdmin, nc.HandleDelete)
}

func (h ApiRouter) registerColdCallRoutes(api fiber.Router) {
	ccc := controllers.GetColdCallController()

	cc := api.Group("/cold-calls", middleware.RequireStaff)
	cc.Get("/", ccc.HandleListTabs)
	cc.Get("/:tabName", ccc.HandleListRows)
	cc.Post("/", ccc.HandleCreateRow)
	// static segments before the :id routes
	cc.Put("/bulk/:tabName", ccc.HandleBulkUpdate)
	cc.Put("/:id", ccc.HandleUpdateRow)
	cc.Delete("/tab/:tabName", ccc.HandleDeleteTab)
	cc.Delete("/:id", ccc.HandleDeleteRow)
}

func (h ApiRouter) registerNewsletterRoutes(api fiber.Router) {
	sc := controllers.GetSubscriberController()

	newsletter := api.Group("/newsletter")
	newsletter.Post("/", sc.HandleSubscribe)
	newsletter.Get("/", middleware.RequireAdmin, sc.HandleList)
	newsletter.Delete("/:id", middleware.RequireAdmin, sc.HandleDelete)
}

func (h ApiRouter) registerShipmentRoutes(api fiber.Router) {
	shc := controllers.GetShipmentController()

	// public tracking lookup, registered outside the guarded group
	api.Get("/shipments/track/:code", shc.HandleTrack)

	shipments := api.Group("/shipments", middleware.RequireStaff)
	shipments.Get("/", shc.HandleList)
	shipments.Get("/:id", shc.HandleGetByID)
	shipments.Post("/", shc.HandleCreate)
	shipments.Put("/:id", shc.HandleUpdate)
	shipments.Delete("/:id", middleware.RequireAdmin, shc.HandleDelete)
}

func (h ApiRouter) registerSiteRoutes(api fiber.Router) {
	stc := controllers.GetSiteController()

	api.Get("/branches", stc.HandleBranches)
	api.Get("/stats", stc.HandleStats)
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}
