package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ocl-logistics/ocl-backend/app/repository"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/actorcontext"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/apperr"
)

// AuthController handles admin login and token rotation
type AuthController struct {
	repo repository.AdminRepository
}

// NewAuthController creates a new auth controller with repository
func NewAuthController(repo repository.AdminRepository) *AuthController {
	return &AuthController{repo: repo}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and issues a fresh API token. Each login
// rotates the token; the previous one stops working immediately.
func (ac *AuthController) HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid request body"))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return respondError(c, apperr.Validation("email and password are required"))
	}

	admin, err := ac.repo.GetByEmail(email)
	if err != nil || !admin.CheckPassword(req.Password) {
		// same answer for unknown account and wrong password
		return failWith(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	token, err := admin.GenerateAPIToken()
	if err != nil {
		return respondError(c, err)
	}
	now := time.Now()
	admin.LastLoginAt = &now
	if err := ac.repo.Update(admin); err != nil {
		return respondError(c, err)
	}

	log.Infof("[Auth] admin %d logged in", admin.ID)

	return respondData(c, fiber.Map{
		"token": token,
		"admin": fiber.Map{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
			"role":  admin.Role,
		},
	})
}

// HandleMe returns the account behind the presented token
func (ac *AuthController) HandleMe(c *fiber.Ctx) error {
	actor := actorcontext.GetActorContext(c)
	admin, err := ac.repo.GetByID(actor.AdminID)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, admin)
}

// Global auth controller instance

var authController *AuthController

// InitializeAuthController initializes the global auth controller
func InitializeAuthController() {
	repo := repository.GetGlobalFactory().GetAdminRepository()
	authController = NewAuthController(repo)
}

// GetAuthController returns the global auth controller instance
func GetAuthController() *AuthController {
	if authController == nil {
		InitializeAuthController()
	}
	return authController
}
