package middleware

import (
	"errors"
	"log"

	"nutrimix/internal/services"

	"github.com/gofiber/fiber/v2"
)

const userIDKey = "userID"

// AuthRequired rejects requests without a valid session token and records
// the authenticated user id for the handlers behind it.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := authService.Authenticate(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			log.Printf("Rejected %s %s: %v", c.Method(), c.Path(), err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": unauthorizedMessage(err),
			})
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID returns the id recorded by AuthRequired, or "" on open routes.
func UserID(c *fiber.Ctx) string {
	userID, _ := c.Locals(userIDKey).(string)
	return userID
}

func unauthorizedMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrMissingAuthHeader):
		return "Authorization header is required"
	case errors.Is(err, services.ErrMalformedAuthHeader):
		return "Authorization header format must be 'Bearer <token>'"
	}
	return "Invalid or expired token"
}

// Open lets every request through. It stands in for AuthRequired when
// mutating routes are left unauthenticated.
func Open() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}
