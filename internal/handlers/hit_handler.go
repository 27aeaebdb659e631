package handlers

import (
	"log"

	"portfolio/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// HitHandler handles page-view tracking and the analytics read path.
type HitHandler struct {
	service  *services.HitService
	validate *validator.Validate
}

// NewHitHandler creates a new HitHandler.
func NewHitHandler(service *services.HitService) *HitHandler {
	return &HitHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the hit routes with the Fiber app.
func (h *HitHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/hit", h.HandleRecordHit)
	router.Get("/hit", h.HandleGetHits)
}

// RecordHitRequest represents a page-view report.
type RecordHitRequest struct {
	Path string `json:"path" validate:"required"`
}

// HandleRecordHit appends one hit row per page view, capturing the
// request's user agent.
func (h *HitHandler) HandleRecordHit(c *fiber.Ctx) error {
	var req RecordHitRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing hit request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Path is required",
		})
	}

	userAgent := c.Get(fiber.HeaderUserAgent)
	if userAgent == "" {
		userAgent = "Unknown"
	}

	hit, err := h.service.RecordHit(req.Path, userAgent)
	if err != nil {
		log.Printf("Error recording hit: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to track visit",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      hit.ID,
	})
}

// HandleGetHits returns the rows and count for a single path, or the
// total plus per-path summary when no filter is given.
func (h *HitHandler) HandleGetHits(c *fiber.Ctx) error {
	path := c.Query("path")
	if path != "" {
		hits, err := h.service.GetHitsByPath(path)
		if err != nil {
			log.Printf("Error fetching hits for path %s: %v", path, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to fetch analytics",
			})
		}
		return c.JSON(fiber.Map{
			"path":  path,
			"count": len(hits),
			"hits":  hits,
		})
	}

	total, summary, err := h.service.Summary()
	if err != nil {
		log.Printf("Error fetching hit summary: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch analytics",
		})
	}
	return c.JSON(fiber.Map{
		"total":   total,
		"summary": summary,
	})
}
