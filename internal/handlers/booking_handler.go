package handlers

import (
	"errors"

	"github.com/connect2study/server/internal/authctx"
	"github.com/connect2study/server/internal/dto"
	"github.com/connect2study/server/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingService *services.BookingService
}

func NewBookingHandler(bookingService *services.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

func (h *BookingHandler) Book(c *fiber.Ctx) error {
	email, err := authctx.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.BookSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid session ID",
		})
	}

	booking, err := h.bookingService.Book(sessionID, email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrDuplicateBooking):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrSessionNotOpen):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to book session",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

func (h *BookingHandler) ListByStudent(c *fiber.Ctx) error {
	bookings, err := h.bookingService.ListByStudent(c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch booked sessions",
		})
	}
	return c.JSON(bookings)
}
