package handlers

import (
	"errors"

	"github.com/connect2study/server/internal/authctx"
	"github.com/connect2study/server/internal/dto"
	"github.com/connect2study/server/internal/services"
	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateIntent asks the gateway for a payment intent. Price arrives in
// major units and is converted to minor units before the gateway call.
func (h *PaymentHandler) CreateIntent(c *fiber.Ctx) error {
	var req dto.PaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	intent, err := h.paymentService.CreateIntent(c.Context(), req.Price.Float64())
	if err != nil {
		if errors.Is(err, services.ErrInvalidPrice) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create payment intent",
		})
	}

	return c.JSON(dto.PaymentIntentResponse{ClientSecret: intent.ClientSecret})
}

// Record stores a completed payment and marks the booking paid.
func (h *PaymentHandler) Record(c *fiber.Ctx) error {
	email, err := authctx.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.RecordPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	payment, err := h.paymentService.Record(email, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(payment)
}

func (h *PaymentHandler) ListByStudent(c *fiber.Ctx) error {
	payments, err := h.paymentService.ListByStudent(c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch payments",
		})
	}
	return c.JSON(payments)
}

func (h *PaymentHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.paymentService.Overview()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to build overview",
		})
	}
	return c.JSON(overview)
}
