package services

import (
	"log"

	"portfolio/internal/models"
	"portfolio/internal/repositories"
)

// ContactEventPublisher publishes a contact-received event for
// downstream consumers. Satisfied by *rabbitmq.Client.
type ContactEventPublisher interface {
	PublishContactReceived(event map[string]interface{}) error
}

// MessageService handles contact-form submissions and admin moderation
// of the resulting messages.
type MessageService struct {
	repo      repositories.MessageRepository
	publisher ContactEventPublisher // may be nil when no broker is configured
}

// NewMessageService creates a new MessageService.
func NewMessageService(repo repositories.MessageRepository, publisher ContactEventPublisher) *MessageService {
	return &MessageService{
		repo:      repo,
		publisher: publisher,
	}
}

// SubmitContact persists a new contact message. New messages always
// start unread. A contact-received event is published best-effort; a
// broker failure never fails the submission.
func (s *MessageService) SubmitContact(message *models.Message) error {
	message.Read = false
	if err := s.repo.Create(message); err != nil {
		return err
	}

	if s.publisher != nil {
		event := map[string]interface{}{
			"messageID": message.ID,
			"name":      message.Name,
			"email":     message.Email,
		}
		if err := s.publisher.PublishContactReceived(event); err != nil {
			log.Printf("Warning: Failed to publish contact received event for message %s: %v", message.ID, err)
		}
	} else {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
	}

	return nil
}

// GetAllMessages retrieves all messages, newest first.
func (s *MessageService) GetAllMessages() ([]models.Message, error) {
	return s.repo.GetAll()
}

// SetMessageRead sets the read flag on a message. Idempotent: setting
// an already-set flag is a no-op update.
func (s *MessageService) SetMessageRead(id string, read bool) (*models.Message, error) {
	message, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	message.Read = read
	if err := s.repo.Update(message); err != nil {
		return nil, err
	}
	return message, nil
}
