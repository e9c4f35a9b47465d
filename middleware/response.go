package middleware

import "github.com/gofiber/fiber/v2"

// JsonResponse writes the uniform API envelope
func JsonResponse(c *fiber.Ctx, statusCode int, success bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": success,
		"message": message,
		"data":    data,
	})
}

// JsonListResponse is the envelope for list endpoints, with a result count
func JsonListResponse(c *fiber.Ctx, statusCode int, success bool, message string, data interface{}, count int) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": success,
		"message": message,
		"data":    data,
		"count":   count,
	})
}
