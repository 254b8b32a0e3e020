package middleware

import (
	"errors"
	"strings"

	"cvhub/internal/models"
	"cvhub/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// UserKey is the fiber.Locals key holding the authenticated *models.User.
const UserKey = "user"

// AuthRequired is a Fiber middleware that resolves the Bearer token to an active user.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "Not authenticated")
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "") {
			return unauthorized(c, "Not authenticated")
		}

		user, err := authService.CurrentUser(strings.TrimSpace(parts[1]))
		switch {
		case err == nil:
		case errors.Is(err, services.ErrInactiveUser):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Inactive user",
			})
		case errors.Is(err, services.ErrUnauthenticated):
			log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
			return unauthorized(c, "Could not validate credentials")
		default:
			log.Error().Err(err).Msg("failed to resolve current user")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Internal server error",
			})
		}

		c.Locals(UserKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user stored by AuthRequired, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(UserKey).(*models.User)
	return user
}

func unauthorized(c *fiber.Ctx, message string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": message,
	})
}
