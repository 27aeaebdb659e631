package repositories

import (
	"errors"
	"fmt"

	"portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProjectRepository is a GORM implementation of ProjectRepository.
type GORMProjectRepository struct {
	db *gorm.DB
}

// NewGORMProjectRepository creates a new instance of GORMProjectRepository.
func NewGORMProjectRepository(db *gorm.DB) *GORMProjectRepository {
	return &GORMProjectRepository{
		db: db,
	}
}

// GetAll retrieves all projects, newest first.
func (r *GORMProjectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to get all projects: %w", err)
	}
	return projects, nil
}

// GetFeatured retrieves featured projects, newest first.
func (r *GORMProjectRepository) GetFeatured() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Where("featured = ?", true).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to get featured projects: %w", err)
	}
	return projects, nil
}

// GetBySlug retrieves projects matching a slug. The slug is unique so at
// most one row comes back, but callers expect a list.
func (r *GORMProjectRepository) GetBySlug(slug string) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Where("slug = ?", slug).Find(&projects).Error; err != nil {
		return nil, fmt.Errorf("failed to get projects by slug %s: %w", slug, err)
	}
	return projects, nil
}

// GetByID retrieves a single project by its ID.
func (r *GORMProjectRepository) GetByID(id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("project with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get project by ID %s: %w", id, err)
	}
	return &project, nil
}

// Create creates a new project in the database. A duplicate slug
// surfaces as ErrDuplicateKey from the unique index.
func (r *GORMProjectRepository) Create(project *models.Project) error {
	if project.ID == "" {
		project.ID = uuid.New().String()
	}
	if err := r.db.Create(project).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("slug %q: %w", project.Slug, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Update updates an existing project in the database.
func (r *GORMProjectRepository) Update(project *models.Project) error {
	res := r.db.Save(project) // Save writes all fields, including zero values
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("slug %q: %w", project.Slug, ErrDuplicateKey)
		}
		return fmt.Errorf("failed to update project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Save does not return ErrRecordNotFound when no rows match,
		// so RowsAffected is the signal.
		return fmt.Errorf("project with ID %s: %w", project.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a project by its ID from the database.
func (r *GORMProjectRepository) Delete(id string) error {
	res := r.db.Delete(&models.Project{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete project: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("project with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
