package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ocl-logistics/ocl-backend/internal/pkg/actorcontext"
)

func newGuardedApp(guard fiber.Handler, actor *actorcontext.ActorContext) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if actor != nil {
			c.Locals(actorcontext.KeyActorContext, *actor)
		}
		return c.Next()
	})
	app.Get("/guarded", guard, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})
	return app
}

func TestRequireAdminRejectsAnonymous(t *testing.T) {
	t.Parallel()

	app := newGuardedApp(RequireAdmin, nil)
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdminRejectsOfficeAdmin(t *testing.T) {
	t.Parallel()

	actor := &actorcontext.ActorContext{AdminID: 7, Role: "office-admin", Authenticated: true}
	app := newGuardedApp(RequireAdmin, actor)
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	t.Parallel()

	actor := &actorcontext.ActorContext{AdminID: 1, Role: "admin", Authenticated: true}
	app := newGuardedApp(RequireAdmin, actor)
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireStaffAllowsBothRoles(t *testing.T) {
	t.Parallel()

	for _, role := range []string{"admin", "office-admin"} {
		actor := &actorcontext.ActorContext{AdminID: 2, Role: role, Authenticated: true}
		app := newGuardedApp(RequireStaff, actor)
		resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "role %s", role)
	}
}

func TestRequireStaffRejectsAnonymous(t *testing.T) {
	t.Parallel()

	app := newGuardedApp(RequireStaff, nil)
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthenticatedAllowsAnyRole(t *testing.T) {
	t.Parallel()

	actor := &actorcontext.ActorContext{AdminID: 3, Role: "office-admin", Authenticated: true}
	app := newGuardedApp(RequireAuthenticated, actor)
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestExtractTokenFromHeader(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	var got string
	app.Get("/", func(c *fiber.Ctx) error {
		got = extractTokenFromHeader(c)
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer abc123")
	_, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-API-Token", "xyz789")
	_, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "xyz789", got)

	req = httptest.NewRequest("GET", "/", nil)
	_, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
