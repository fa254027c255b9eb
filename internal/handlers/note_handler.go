package handlers

import (
	"errors"

	"github.com/connect2study/server/internal/authctx"
	"github.com/connect2study/server/internal/dto"
	"github.com/connect2study/server/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type NoteHandler struct {
	noteService *services.NoteService
}

func NewNoteHandler(noteService *services.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (h *NoteHandler) Create(c *fiber.Ctx) error {
	email, err := authctx.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.NoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	note, err := h.noteService.Create(email, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(note)
}

func (h *NoteHandler) ListByOwner(c *fiber.Ctx) error {
	notes, err := h.noteService.ListByOwner(c.Params("email"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch notes",
		})
	}
	return c.JSON(notes)
}

func (h *NoteHandler) Update(c *fiber.Ctx) error {
	email, err := authctx.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid note ID",
		})
	}

	var req dto.NoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.noteService.Update(id, email, &req); err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update note",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

func (h *NoteHandler) Delete(c *fiber.Ctx) error {
	email, err := authctx.Email(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid note ID",
		})
	}

	if err := h.noteService.Delete(id, email); err != nil {
		if errors.Is(err, services.ErrNoteNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete note",
		})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Note deleted"})
}
