package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ReddyRohith-E/MeFit-sub000/pkg/utils"
)

func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		claims, err := utils.ValidateToken(parts[1], secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("is_contributor", claims.IsContributor)
		c.Locals("is_admin", claims.IsAdmin)

		return c.Next()
	}
}

// ContributorRequired gates catalog writes. Admins are contributors too.
func ContributorRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isContributor, _ := c.Locals("is_contributor").(bool)
		isAdmin, _ := c.Locals("is_admin").(bool)
		if !isContributor && !isAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Contributor access required",
			})
		}
		return c.Next()
	}
}

func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isAdmin, _ := c.Locals("is_admin").(bool)
		if !isAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Admin access required",
			})
		}
		return c.Next()
	}
}
