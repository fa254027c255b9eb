package handlers

import (
	"errors"

	"github.com/connect2study/server/internal/authctx"
	"github.com/connect2study/server/internal/dto"
	"github.com/connect2study/server/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type MaterialHandler struct {
	materialService *services.MaterialService
}

func NewMaterialHandler(materialService *services.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialService: materialService}
}

func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	email, err := authctx.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.MaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	material, err := h.materialService.Create(email, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrNotSessionOwner):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(material)
}

func (h *MaterialHandler) ListByTutor(c *fiber.Ctx) error {
	materials, err := h.materialService.ListByTutor(c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch materials",
		})
	}
	return c.JSON(materials)
}

// ListForStudent returns materials of every session the student booked.
func (h *MaterialHandler) ListForStudent(c *fiber.Ctx) error {
	materials, err := h.materialService.ListForStudent(c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch materials",
		})
	}
	return c.JSON(materials)
}

func (h *MaterialHandler) ListAll(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 20)

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	materials, total, err := h.materialService.ListAll(page, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch materials",
		})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"materials": materials,
			"pagination": fiber.Map{
				"page":  page,
				"limit": limit,
				"total": total,
			},
		},
	})
}

func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid material ID",
		})
	}

	if err := h.materialService.Delete(id); err != nil {
		if errors.Is(err, services.ErrMaterialNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete material",
		})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Material deleted"})
}
