package middleware

import (
	"crypto/subtle"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// OperatorAuthMiddleware guards the mutating routes with a shared bearer token.
// An empty token disables the check.
func OperatorAuthMiddleware(expectedToken string) fiber.Handler {
	if expectedToken == "" {
		log.Println("⚠️  OPERATOR_TOKEN is not set — mutating routes are open to anyone")
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			log.Printf("🚫 [OPERATOR_AUTH] Missing Authorization header for %s %s", c.Method(), c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "operator token missing",
			})
		}

		// Accept both "Bearer <token>" and the raw token.
		token := strings.TrimPrefix(authHeader, "Bearer ")

		if subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
			log.Printf("❌ [OPERATOR_AUTH] Invalid token for %s %s", c.Method(), c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid operator token",
			})
		}
		return c.Next()
	}
}
