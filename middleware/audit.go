package middleware

import (
	"github.com/kodraiti-design/eagles-transportes/logger"
	"github.com/kodraiti-design/eagles-transportes/utils"

	"github.com/gofiber/fiber/v2"
)

// AuditLog persists every mutating request through the async logger.
// Reads are skipped to keep the log table focused on state changes.
func AuditLog(asyncLogger *logger.AsyncLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if c.Method() != fiber.MethodGet && c.Method() != fiber.MethodOptions {
			asyncLogger.Log(utils.CreateSanitizedLogEntry(c))
		}
		return err
	}
}
