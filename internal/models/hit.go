package models

import "time"

// Hit is a single recorded page view. Append-only: never updated or deleted.
type Hit struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Path      string    `json:"path" gorm:"type:varchar(255);index" validate:"required"`
	UserAgent string    `json:"userAgent" gorm:"type:varchar(512)"`
	CreatedAt time.Time `json:"createdAt"`
}
