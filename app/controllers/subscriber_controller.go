package controllers

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/ocl-logistics/ocl-backend/app/models"
	"github.com/ocl-logistics/ocl-backend/app/repository"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/apperr"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/mail"
)

// SubscriberController handles newsletter signups and the admin roster
type SubscriberController struct {
	repo     repository.SubscriberRepository
	validate *validator.Validate
}

// NewSubscriberController creates a new subscriber controller with repository
func NewSubscriberController(repo repository.SubscriberRepository) *SubscriberController {
	return &SubscriberController{repo: repo, validate: validator.New()}
}

type subscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// HandleSubscribe registers a newsletter recipient
func (sc *SubscriberController) HandleSubscribe(c *fiber.Ctx) error {
	var req subscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, apperr.Validation("invalid request body"))
	}

	sub := &models.Subscriber{
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Name:  strings.TrimSpace(req.Name),
	}
	if err := sc.validate.Struct(sub); err != nil {
		return respondError(c, apperr.Validation("a valid email address is required"))
	}

	if _, err := sc.repo.GetByEmail(sub.Email); err == nil {
		return respondError(c, apperr.Conflict("this address is already subscribed"))
	}

	if err := sc.repo.Create(sub); err != nil {
		return respondError(c, err)
	}

	go func(email, name string) {
		if err := mail.SendWelcomeMail(email, name); err != nil {
			log.Warnf("[Newsletter] welcome mail to %s failed: %v", email, err)
		}
	}(sub.Email, sub.Name)

	return respondCreated(c, fiber.Map{"subscribed": true, "email": sub.Email})
}

// HandleList returns a page of subscribers for the admin panel
func (sc *SubscriberController) HandleList(c *fiber.Ctx) error {
	page, limit := parsePagination(c, 25, 100)

	subs, total, err := sc.repo.List((page-1)*limit, limit)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.Map{
		"subscribers": subs,
		"pagination": fiber.Map{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": pageCount(total, limit),
		},
	})
}

// HandleDelete removes a subscriber
func (sc *SubscriberController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := sc.repo.Delete(id); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.Map{"deleted": true})
}

// Global subscriber controller instance

var subscriberController *SubscriberController

// InitializeSubscriberController initializes the global subscriber controller
func InitializeSubscriberController() {
	repo := repository.GetGlobalFactory().GetSubscriberRepository()
	subscriberController = NewSubscriberController(repo)
}

// GetSubscriberController returns the global subscriber controller instance
func GetSubscriberController() *SubscriberController {
	if subscriberController == nil {
		InitializeSubscriberController()
	}
	return subscriberController
}
