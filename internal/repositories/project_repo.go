package repositories

import "portfolio/internal/models"

// ProjectRepository defines the interface for project data access.
type ProjectRepository interface {
	GetAll() ([]models.Project, error)
	GetFeatured() ([]models.Project, error)
	GetBySlug(slug string) ([]models.Project, error)
	GetByID(id string) (*models.Project, error)
	Create(project *models.Project) error
	Update(project *models.Project) error
	Delete(id string) error
}
