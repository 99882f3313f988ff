package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// JsonResponse writes a success envelope with optional message and payload
func JsonResponse(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	resp := fiber.Map{
		"success": true,
		"data":    data,
	}
	if message != "" {
		resp["message"] = message
	}
	return c.Status(statusCode).JSON(resp)
}

// ErrorResponse writes a failure envelope with a human-readable error
func ErrorResponse(c *fiber.Ctx, statusCode int, errMsg string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": false,
		"error":   errMsg,
	})
}

// ValidationErrorResponse reports per-field validation failures as a client error
func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   "Missing required fields",
		"details": errors,
	})
}
