package middleware

import (
	"github.com/connect2study/server/internal/authctx"
	"github.com/connect2study/server/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// SelfScoped restricts a per-user route to the user named in its :email
// path param. Nobody bypasses this check, admins included.
func SelfScoped() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := authctx.Email(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if c.Params("email") != email {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Forbidden access",
			})
		}

		return c.Next()
	}
}
