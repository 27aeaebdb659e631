package models

import "time"

// Message is a contact-form submission. Rows are never deleted; the
// only mutation the system performs is toggling the read flag.
type Message struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" gorm:"type:varchar(255)" validate:"required,max=255"`
	Email     string    `json:"email" gorm:"type:varchar(255)" validate:"required,email,max=255"`
	Subject   *string   `json:"subject,omitempty" gorm:"type:varchar(255)"`
	Body      string    `json:"message" gorm:"column:message;type:text" validate:"required"`
	Read      bool      `json:"read" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
}
