package handlers

import (
	"errors"
	"log"

	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// MessageHandler handles the public contact form and the admin message
// moderation endpoints.
type MessageHandler struct {
	service  *services.MessageService
	validate *validator.Validate
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(service *services.MessageService) *MessageHandler {
	return &MessageHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the contact submission route.
func (h *MessageHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleSubmitContact)
}

// RegisterAdminRoutes registers the moderation routes. The caller
// mounts these behind the session middleware. No delete is exposed.
func (h *MessageHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/messages", h.HandleGetMessages)
	router.Patch("/messages", h.HandleSetRead)
}

// ContactRequest represents a contact-form submission.
type ContactRequest struct {
	Name    string  `json:"name" validate:"required,max=255"`
	Email   string  `json:"email" validate:"required,email,max=255"`
	Subject *string `json:"subject"`
	Message string  `json:"message" validate:"required"`
}

// HandleSubmitContact persists a contact message from an untrusted
// client. Name, email and message are required; the email must look
// like an address.
func (h *MessageHandler) HandleSubmitContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing contact request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Name, email, and message are required",
			"errors": validationErrorMessages(err),
		})
	}

	message := &models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	}
	if err := h.service.SubmitContact(message); err != nil {
		log.Printf("Error saving contact message: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to send message",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      message.ID,
	})
}

// HandleGetMessages lists all messages, newest first.
func (h *MessageHandler) HandleGetMessages(c *fiber.Ctx) error {
	messages, err := h.service.GetAllMessages()
	if err != nil {
		log.Printf("Error fetching messages: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch messages",
		})
	}
	return c.JSON(messages)
}

// SetReadRequest represents the body of a read-flag update.
type SetReadRequest struct {
	ID   string `json:"id" validate:"required"`
	Read *bool  `json:"read" validate:"required"`
}

// HandleSetRead sets the read flag on a message.
func (h *MessageHandler) HandleSetRead(c *fiber.Ctx) error {
	var req SetReadRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing message update request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Validation failed",
			"errors": validationErrorMessages(err),
		})
	}

	message, err := h.service.SetMessageRead(req.ID, *req.Read)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Message not found",
			})
		}
		log.Printf("Error updating message %s: %v", req.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update message",
		})
	}

	return c.JSON(message)
}
