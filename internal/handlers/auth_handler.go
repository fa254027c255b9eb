package handlers

import (
	"github.com/connect2study/server/internal/dto"
	"github.com/connect2study/server/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	tokenService *services.TokenService
	userService  *services.UserService
}

func NewAuthHandler(tokenService *services.TokenService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{tokenService: tokenService, userService: userService}
}

// IssueToken exchanges a verified identity for a signed 7-day token.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var req dto.TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Email is required",
		})
	}

	token, err := h.tokenService.Issue(req.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to issue token",
		})
	}

	return c.JSON(dto.TokenResponse{Token: token})
}

// Register creates a user record on first registration. Registering an
// existing email again is a no-op that reports the sentinel response.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, err := h.userService.Register(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	if user == nil {
		return c.JSON(dto.RegisterUserResponse{
			Message:    "User already exist",
			InsertedID: nil,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.RegisterUserResponse{
		InsertedID: &user.ID,
	})
}
