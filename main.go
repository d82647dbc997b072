package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	redisstorage "github.com/gofiber/storage/redis"

	"github.com/ocl-logistics/ocl-backend/app/repository"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/cache"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/database"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/env"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	repository.InitializeFactory(database.GetDB())
	cache.SetupCache()

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // multipart forms with a news image
	})
	app.Use(recover.New(), logger.New())
	app.Get("/metrics", monitor.New())

	// uploaded news media
	app.Static("/uploads", env.GetEnv("UPLOAD_DIR", "uploads"))

	// rate limit the API; counters live in Redis so they survive restarts
	// and are shared between instances
	app.Use("/api", limiter.New(limiter.Config{
		Max:        rateLimitMax(),
		Expiration: time.Minute,
		Storage:    newLimiterStorage(),
	}))

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: "./public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app)

	return app
}

func rateLimitMax() int {
	limit, err := strconv.Atoi(env.GetEnv("API_RATE_LIMIT", "120"))
	if err != nil || limit < 1 {
		return 120
	}
	return limit
}

func newLimiterStorage() fiber.Storage {
	port, err := strconv.Atoi(env.GetEnv("CACHE_PORT", "6379"))
	if err != nil {
		port = 6379
	}
	db, err := strconv.Atoi(env.GetEnv("CACHE_DB", "0"))
	if err != nil {
		db = 0
	}

	return redisstorage.New(redisstorage.Config{
		Host:     env.GetEnv("CACHE_HOST", "localhost"),
		Port:     port,
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		Database: db,
	})
}
