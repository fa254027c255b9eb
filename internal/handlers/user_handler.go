package handlers

import (
	"errors"

	"github.com/connect2study/server/internal/dto"
	"github.com/connect2study/server/internal/models"
	"github.com/connect2study/server/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) ListAll(c *fiber.Ctx) error {
	search := c.Query("search")
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := h.userService.List(search, page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch users",
		})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"users": users,
			"pagination": fiber.Map{
				"page":  page,
				"limit": limit,
				"total": total,
			},
		},
	})
}

func (h *UserHandler) Tutors(c *fiber.Ctx) error {
	tutors, err := h.userService.Tutors()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch tutors",
		})
	}
	return c.JSON(tutors)
}

// CheckAdmin reports whether the (self-scoped) email holds the admin role.
// An unknown email is simply not an admin.
func (h *UserHandler) CheckAdmin(c *fiber.Ctx) error {
	user, err := h.userService.GetByEmail(c.Params("email"))
	if err != nil && !errors.Is(err, services.ErrUserNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch user",
		})
	}
	return c.JSON(dto.AdminCheckResponse{Admin: user != nil && user.Role == models.RoleAdmin})
}

func (h *UserHandler) CheckTutor(c *fiber.Ctx) error {
	user, err := h.userService.GetByEmail(c.Params("email"))
	if err != nil && !errors.Is(err, services.ErrUserNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch user",
		})
	}
	return c.JSON(dto.TutorCheckResponse{Tutor: user != nil && user.Role == models.RoleTutor})
}

func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.userService.UpdateRole(id, req.Role); err != nil {
		if errors.Is(err, services.ErrInvalidRole) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update role",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user ID",
		})
	}

	if err := h.userService.Delete(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete user",
		})
	}

	return c.JSON(fiber.Map{"success": true, "message": "User deleted"})
}
