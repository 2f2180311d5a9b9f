package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"blogbackend/config"
	"blogbackend/models"
	"blogbackend/utils"
)

// Protected requires a valid JWT and an active account. The resolved user is
// stored in the request context.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := extractToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		user, err := resolveUser(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		if !user.IsActive {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Account is not active",
			})
		}

		c.Locals("user", user)
		c.Locals("userID", user.ID)

		return c.Next()
	}
}

// OptionalAuth resolves the actor when credentials are present but lets
// anonymous requests through. Read endpoints use it so public posts stay
// readable without an account.
func OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := extractToken(c)
		if err != nil {
			// No credentials: proceed as the anonymous actor.
			return c.Next()
		}

		user, err := resolveUser(token)
		if err != nil || !user.IsActive {
			// A presented-but-bad token is rejected rather than downgraded
			// to anonymous, so callers notice expired sessions.
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("user", user)
		c.Locals("userID", user.ID)

		return c.Next()
	}
}

// CurrentUser returns the authenticated user from the request context, or nil
// for anonymous requests.
func CurrentUser(c *fiber.Ctx) *models.User {
	if user, ok := c.Locals("user").(*models.User); ok {
		return user
	}
	return nil
}

func extractToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization format")
		}
		return tokenParts[1], nil
	}

	// Fall back to cookie if header not present
	token := c.Cookies("access_token")
	if token == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Authorization required")
	}
	return token, nil
}

func resolveUser(token string) (*models.User, error) {
	claims, err := utils.ParseJWTToken(token)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := config.DB.Preload("Team").First(&user, claims.UserID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
