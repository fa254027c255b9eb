package handlers

import (
	"github.com/connect2study/server/internal/dto"
	"github.com/connect2study/server/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AnnouncementHandler struct {
	announcementService *services.AnnouncementService
}

func NewAnnouncementHandler(announcementService *services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	var req dto.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	announcement, err := h.announcementService.Create(&req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(announcement)
}

func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	announcements, err := h.announcementService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch announcements",
		})
	}
	return c.JSON(announcements)
}
