package controllers

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ocl-logistics/ocl-backend/app/models"
	"github.com/ocl-logistics/ocl-backend/app/repository"
	"github.com/ocl-logistics/ocl-backend/internal/pkg/apperr"
)

// ShipmentController handles courier assignment records and public tracking
type ShipmentController struct {
	repo     repository.ShipmentRepository
	validate *validator.Validate
}

// NewShipmentController creates a new shipment controller with repository
func NewShipmentController(repo repository.ShipmentRepository) *ShipmentController {
	return &ShipmentController{repo: repo, validate: validator.New()}
}

type shipmentPayload struct {
	ConsigneeName *string `json:"consigneeName"`
	Origin        *string `json:"origin"`
	Destination   *string `json:"destination"`
	CourierName   *string `json:"courierName"`
	CourierPhone  *string `json:"courierPhone"`
	Status        *string `json:"status"`
	Notes         *string `json:"notes"`
}

// HandleList returns a page of shipments, optionally narrowed by ?status
func (shc *ShipmentController) HandleList(c *fiber.Ctx) error {
	page, limit := parsePagination(c, 25, 100)

	status := c.Query("status")
	if status != "" && !models.ValidShipmentStatus(status) {
		return respondError(c, apperr.Validation("unknown shipment status"))
	}

	shipments, total, err := shc.repo.List(status, (page-1)*limit, limit)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.Map{
		"shipments": shipments,
		"pagination": fiber.Map{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": pageCount(total, limit),
		},
	})
}

// HandleGetByID returns one shipment
func (shc *ShipmentController) HandleGetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	shipment, err := shc.repo.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, shipment)
}

// HandleTrack returns the public view of a shipment by its tracking code.
// No authentication; only non-sensitive fields are exposed.
func (shc *ShipmentController) HandleTrack(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Params("code")))
	shipment, err := shc.repo.GetByTrackingCode(code)
	if err != nil {
		return respondError(c, err)
	}

	return respondData(c, fiber.Map{
		"trackingCode": shipment.TrackingCode,
		"origin":       shipment.Origin,
		"destination":  shipment.Destination,
		"status":       shipment.Status,
		"assignedAt":   shipment.AssignedAt,
		"deliveredAt":  shipment.DeliveredAt,
	})
}

// HandleCreate books a new shipment and assigns it a tracking code
func (shc *ShipmentController) HandleCreate(c *fiber.Ctx) error {
	var payload shipmentPayload
	if err := c.BodyParser(&payload); err != nil {
		return respondError(c, apperr.Validation("invalid request body"))
	}
	if payload.Status != nil && !models.ValidShipmentStatus(*payload.Status) {
		return respondError(c, apperr.Validation("unknown shipment status"))
	}

	now := time.Now()
	shipment := &models.Shipment{
		TrackingCode:  models.NewTrackingCode(),
		ConsigneeName: strings.TrimSpace(str(payload.ConsigneeName)),
		Origin:        strings.TrimSpace(str(payload.Origin)),
		Destination:   strings.TrimSpace(str(payload.Destination)),
		CourierName:   str(payload.CourierName),
		CourierPhone:  str(payload.CourierPhone),
		Status:        models.SHIPMENT_BOOKED,
		Notes:         str(payload.Notes),
	}
	if shipment.CourierName != "" {
		shipment.AssignedAt = &now
	}
	if payload.Status != nil {
		shipment.SetStatus(*payload.Status, now)
	}

	if err := shc.validate.Struct(shipment); err != nil {
		return respondError(c, apperr.Validation("consigneeName, origin and destination are required"))
	}

	if err := shc.repo.Create(shipment); err != nil {
		return respondError(c, err)
	}
	return respondCreated(c, shipment)
}

// HandleUpdate applies a partial update. Assigning a courier stamps
// AssignedAt; the first transition to delivered stamps DeliveredAt.
func (shc *ShipmentController) HandleUpdate(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	shipment, err := shc.repo.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	var payload shipmentPayload
	if err := c.BodyParser(&payload); err != nil {
		return respondError(c, apperr.Validation("invalid request body"))
	}
	if payload.Status != nil && !models.ValidShipmentStatus(*payload.Status) {
		return respondError(c, apperr.Validation("unknown shipment status"))
	}

	now := time.Now()
	if payload.ConsigneeName != nil {
		shipment.ConsigneeName = strings.TrimSpace(*payload.ConsigneeName)
	}
	if payload.Origin != nil {
		shipment.Origin = strings.TrimSpace(*payload.Origin)
	}
	if payload.Destination != nil {
		shipment.Destination = strings.TrimSpace(*payload.Destination)
	}
	if payload.CourierName != nil {
		shipment.CourierName = *payload.CourierName
		if shipment.CourierName != "" && shipment.AssignedAt == nil {
			shipment.AssignedAt = &now
		}
	}
	if payload.CourierPhone != nil {
		shipment.CourierPhone = *payload.CourierPhone
	}
	if payload.Notes != nil {
		shipment.Notes = *payload.Notes
	}
	if payload.Status != nil {
		shipment.SetStatus(*payload.Status, now)
	}

	if err := shc.validate.Struct(shipment); err != nil {
		return respondError(c, apperr.Validation("consigneeName, origin and destination must not be empty"))
	}

	if err := shc.repo.Update(shipment); err != nil {
		return respondError(c, err)
	}
	return respondData(c, shipment)
}

// HandleDelete removes a shipment record
func (shc *ShipmentController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := shc.repo.Delete(id); err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.Map{"deleted": true})
}

// Global shipment controller instance

var shipmentController *ShipmentController

// InitializeShipmentController initializes the global shipment controller
func InitializeShipmentController() {
	repo := repository.GetGlobalFactory().GetShipmentRepository()
	shipmentController = NewShipmentController(repo)
}

// GetShipmentController returns the global shipment controller instance
func GetShipmentController() *ShipmentController {
	if shipmentController == nil {
		InitializeShipmentController()
	}
	return shipmentController
}
