package services

import (
	"fmt"

	"portfolio/internal/models"
	"portfolio/internal/repositories"
)

// ProjectService handles business logic related to portfolio projects.
type ProjectService struct {
	repo repositories.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(repo repositories.ProjectRepository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

// UpdateProjectInput carries the fields of a partial project update.
// Nil pointers (and nil slices) mean "leave unchanged".
type UpdateProjectInput struct {
	Slug            *string  `json:"slug"`
	Title           *string  `json:"title"`
	Description     *string  `json:"description"`
	LongDescription *string  `json:"longDescription"`
	TechStack       []string `json:"techStack"`
	Category        *string  `json:"category"`
	Featured        *bool    `json:"featured"`
	ImageURL        *string  `json:"imageUrl"`
	DemoURL         *string  `json:"demoUrl"`
	RepoURL         *string  `json:"repoUrl"`
	WhatBroke       *string  `json:"whatBroke"`
	Screenshots     []string `json:"screenshots"`
}

// GetAllProjects retrieves all projects, newest first.
func (s *ProjectService) GetAllProjects() ([]models.Project, error) {
	return s.repo.GetAll()
}

// GetFeaturedProjects retrieves featured projects, newest first.
func (s *ProjectService) GetFeaturedProjects() ([]models.Project, error) {
	return s.repo.GetFeatured()
}

// GetProjectsBySlug retrieves the projects matching a slug. Slug is
// unique, so the list has at most one element; callers take the first.
func (s *ProjectService) GetProjectsBySlug(slug string) ([]models.Project, error) {
	return s.repo.GetBySlug(slug)
}

// CreateProject creates a new project. The slug pre-check is advisory:
// the unique index is what actually rejects concurrent duplicates, and
// the repository reports that as ErrDuplicateKey.
func (s *ProjectService) CreateProject(project *models.Project) error {
	if existing, err := s.repo.GetBySlug(project.Slug); err == nil && len(existing) > 0 {
		return fmt.Errorf("slug %q: %w", project.Slug, repositories.ErrDuplicateKey)
	}

	if project.TechStack == nil {
		project.TechStack = models.StringList{}
	}
	if project.Screenshots == nil {
		project.Screenshots = models.StringList{}
	}

	return s.repo.Create(project)
}

// UpdateProject merges the supplied fields into an existing project and
// persists the result.
func (s *ProjectService) UpdateProject(id string, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Slug != nil {
		project.Slug = *input.Slug
	}
	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.LongDescription != nil {
		project.LongDescription = *input.LongDescription
	}
	if input.TechStack != nil {
		project.TechStack = models.StringList(input.TechStack)
	}
	if input.Category != nil {
		project.Category = *input.Category
	}
	if input.Featured != nil {
		project.Featured = *input.Featured
	}
	if input.ImageURL != nil {
		project.ImageURL = input.ImageURL
	}
	if input.DemoURL != nil {
		project.DemoURL = input.DemoURL
	}
	if input.RepoURL != nil {
		project.RepoURL = input.RepoURL
	}
	if input.WhatBroke != nil {
		project.WhatBroke = input.WhatBroke
	}
	if input.Screenshots != nil {
		project.Screenshots = models.StringList(input.Screenshots)
	}

	if err := s.repo.Update(project); err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes a project by its ID. Nothing references
// projects, so the delete is unconditional.
func (s *ProjectService) DeleteProject(id string) error {
	return s.repo.Delete(id)
}
