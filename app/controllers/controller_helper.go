package controllers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ocl-logistics/ocl-backend/internal/pkg/apperr"
)

// Every endpoint answers with the same envelope: {success, data} on the
// happy path, {success, error} otherwise.

func respondData(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func respondCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": data})
}

// respondError maps the error taxonomy onto HTTP statuses. Unclassified
// errors are logged server-side and surface as a generic 500; raw driver
// messages never reach the client.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case apperr.IsValidation(err):
		return failWith(c, fiber.StatusBadRequest, err.Error())
	case apperr.IsNotFound(err):
		return failWith(c, fiber.StatusNotFound, err.Error())
	case apperr.IsConflict(err):
		return failWith(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		return failWith(c, fiber.StatusNotFound, "record not found")
	default:
		log.Printf("unexpected error on %s %s: %v", c.Method(), c.Path(), err)
		return failWith(c, fiber.StatusInternalServerError, "internal server error")
	}
}

func failWith(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": message})
}

// parseIDParam reads the :id route parameter as an unsigned integer.
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, apperr.Validation("invalid id parameter")
	}
	return uint(id), nil
}

// parsePagination reads ?page and ?limit with sane defaults and caps.
func parsePagination(c *fiber.Ctx, defaultLimit, maxLimit int) (page, limit int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

// pageCount returns the number of pages needed for total items.
func pageCount(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
