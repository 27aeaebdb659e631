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

// ProjectHandler handles HTTP requests for portfolio projects. Reads
// are public; create/update/delete live under the admin group.
type ProjectHandler struct {
	service  *services.ProjectService
	validate *validator.Validate
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterPublicRoutes registers the read-only project routes.
func (h *ProjectHandler) RegisterPublicRoutes(router fiber.Router) {
	router.Get("/projects", h.HandleListProjects)
}

// RegisterAdminRoutes registers the mutating project routes. The
// caller mounts these behind the session middleware.
func (h *ProjectHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/projects", h.HandleCreateProject)
	router.Put("/projects", h.HandleUpdateProject)
	router.Delete("/projects", h.HandleDeleteProject)
}

// HandleListProjects lists projects: all, featured only, or by slug.
// The slug lookup still returns a list; callers take the first element.
func (h *ProjectHandler) HandleListProjects(c *fiber.Ctx) error {
	var (
		projects []models.Project
		err      error
	)

	switch {
	case c.Query("slug") != "":
		projects, err = h.service.GetProjectsBySlug(c.Query("slug"))
	case c.Query("featured") == "true":
		projects, err = h.service.GetFeaturedProjects()
	default:
		projects, err = h.service.GetAllProjects()
	}

	if err != nil {
		log.Printf("Error listing projects: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch projects",
		})
	}
	return c.JSON(projects)
}

// HandleCreateProject creates a new project.
func (h *ProjectHandler) HandleCreateProject(c *fiber.Ctx) error {
	var project models.Project
	if err := c.BodyParser(&project); err != nil {
		log.Printf("Error parsing create project request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(project); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Missing required fields",
			"errors": validationErrorMessages(err),
		})
	}

	if err := h.service.CreateProject(&project); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Project with this slug already exists",
			})
		}
		log.Printf("Error creating project: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create project",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdateProjectRequest represents the request body for a project update.
// Fields left out of the body are left unchanged.
type UpdateProjectRequest struct {
	ID string `json:"id" validate:"required"`
	services.UpdateProjectInput
}

// HandleUpdateProject merges the supplied fields into an existing project.
func (h *ProjectHandler) HandleUpdateProject(c *fiber.Ctx) error {
	var req UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update project request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Project ID is required",
		})
	}

	project, err := h.service.UpdateProject(req.ID, req.UpdateProjectInput)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Project not found",
			})
		}
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Project with this slug already exists",
			})
		}
		log.Printf("Error updating project %s: %v", req.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update project",
		})
	}

	return c.JSON(project)
}

// HandleDeleteProject removes a project by id (query parameter).
func (h *ProjectHandler) HandleDeleteProject(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Project ID is required",
		})
	}

	if err := h.service.DeleteProject(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Project not found",
			})
		}
		log.Printf("Error deleting project %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete project",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
