package middleware

import (
	"github.com/connect2study/server/internal/authctx"
	"github.com/connect2study/server/internal/dto"
	"github.com/connect2study/server/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RequireRole gates a route on the requester's persisted role. The lookup
// happens on every request; a missing user record, a lookup failure or a
// role mismatch are all treated as "does not have that role".
func RequireRole(db *gorm.DB, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := authctx.Email(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil || user.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Forbidden: " + role + " access required",
			})
		}

		return c.Next()
	}
}
