package repositories

import "portfolio/internal/models"

// MessageRepository defines the interface for contact-message data access.
// Messages are never deleted, so no Delete is exposed.
type MessageRepository interface {
	GetAll() ([]models.Message, error)
	GetByID(id string) (*models.Message, error)
	Create(message *models.Message) error
	Update(message *models.Message) error
}
