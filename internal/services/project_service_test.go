package services_test

import (
	"fmt"
	"testing"

	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockProjectRepository is a mock implementation of repositories.ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) GetAll() ([]models.Project, error) {
	args := m.Called()
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectRepository) GetFeatured() ([]models.Project, error) {
	args := m.Called()
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectRepository) GetBySlug(slug string) ([]models.Project, error) {
	args := m.Called(slug)
	return args.Get(0).([]models.Project), args.Error(1)
}

func (m *MockProjectRepository) GetByID(id string) (*models.Project, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) Create(project *models.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(project *models.Project) error {
	args := m.Called(project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProjectService_GetAllProjects(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	service := services.NewProjectService(mockRepo)

	expectedProjects := []models.Project{
		{ID: "1", Slug: "chat-app", Title: "Chat App"},
		{ID: "2", Slug: "task-saas", Title: "Task Manager"},
	}

	mockRepo.On("GetAll").Return(expectedProjects, nil).Once()

	projects, err := service.GetAllProjects()

	assert.NoError(t, err)
	assert.Len(t, projects, 2)
	assert.Equal(t, expectedProjects, projects)
	mockRepo.AssertExpectations(t)
}

func TestProjectService_CreateProject(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	service := services.NewProjectService(mockRepo)

	newProject := &models.Project{
		Slug:            "chat-app",
		Title:           "Chat App",
		Description:     "Realtime chat",
		LongDescription: "A realtime chat application",
		Category:        "Full-Stack",
		TechStack:       models.StringList{"Go", "WebSocket"},
	}

	// Test successful creation
	mockRepo.On("GetBySlug", "chat-app").Return([]models.Project{}, nil).Once()
	mockRepo.On("Create", newProject).Return(nil).Once()
	err := service.CreateProject(newProject)
	assert.NoError(t, err)
	assert.NotNil(t, newProject.Screenshots) // lists default to empty, not nil
	mockRepo.AssertExpectations(t)

	// Duplicate slug caught by the advisory pre-check
	mockRepo.On("GetBySlug", "chat-app").Return([]models.Project{{ID: "1", Slug: "chat-app"}}, nil).Once()
	err = service.CreateProject(newProject)
	assert.ErrorIs(t, err, repositories.ErrDuplicateKey)
	mockRepo.AssertExpectations(t)

	// Duplicate slug caught by the unique index when the pre-check races
	mockRepo.On("GetBySlug", "chat-app").Return([]models.Project{}, nil).Once()
	mockRepo.On("Create", newProject).Return(fmt.Errorf("slug %q: %w", "chat-app", repositories.ErrDuplicateKey)).Once()
	err = service.CreateProject(newProject)
	assert.ErrorIs(t, err, repositories.ErrDuplicateKey)
	mockRepo.AssertExpectations(t)
}

func TestProjectService_UpdateProject(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	service := services.NewProjectService(mockRepo)

	existing := &models.Project{
		ID:              "1",
		Slug:            "chat-app",
		Title:           "Chat App",
		Description:     "Realtime chat",
		LongDescription: "A realtime chat application",
		Category:        "Full-Stack",
		TechStack:       models.StringList{"Go"},
		Screenshots:     models.StringList{"/img/1.png"},
	}

	// Only supplied fields are merged; the rest stay untouched
	newTitle := "Chat App v2"
	featured := true
	mockRepo.On("GetByID", "1").Return(existing, nil).Once()
	mockRepo.On("Update", mock.AnythingOfType("*models.Project")).Return(nil).Once()

	updated, err := service.UpdateProject("1", services.UpdateProjectInput{
		Title:     &newTitle,
		Featured:  &featured,
		TechStack: []string{"Go", "Fiber"},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Chat App v2", updated.Title)
	assert.True(t, updated.Featured)
	assert.Equal(t, models.StringList{"Go", "Fiber"}, updated.TechStack)
	assert.Equal(t, "chat-app", updated.Slug)                             // unchanged
	assert.Equal(t, models.StringList{"/img/1.png"}, updated.Screenshots) // unchanged
	mockRepo.AssertExpectations(t)

	// Test update of a project that does not exist
	mockRepo.On("GetByID", "99").Return(nil, fmt.Errorf("project with ID 99: %w", repositories.ErrNotFound)).Once()
	_, err = service.UpdateProject("99", services.UpdateProjectInput{Title: &newTitle})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProjectService_DeleteProject(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	service := services.NewProjectService(mockRepo)

	// Test successful deletion
	mockRepo.On("Delete", "1").Return(nil).Once()
	err := service.DeleteProject("1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)

	// A repeated delete of the same id fails as not-found
	mockRepo.On("Delete", "1").Return(fmt.Errorf("project with ID 1: %w", repositories.ErrNotFound)).Once()
	err = service.DeleteProject("1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
