package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Every response carries exactly one of data or error, mirroring the
// facade's uniform result pair.

func dataResponse(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{"data": data})
}

func errorResponse(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// getUserID pulls the authenticated user id set by the auth middleware.
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system"
	}
	return userID.(string)
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
