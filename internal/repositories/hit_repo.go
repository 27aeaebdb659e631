package repositories

import "portfolio/internal/models"

// PathCount is the number of hits recorded against a single path.
type PathCount struct {
	Path  string `json:"path"`
	Count int64  `json:"count"`
}

// HitRepository defines the interface for page-hit data access.
// Hits are append-only: no update or delete.
type HitRepository interface {
	Create(hit *models.Hit) error
	GetByPath(path string) ([]models.Hit, error)
	CountAll() (int64, error)
	CountByPath() ([]PathCount, error)
}
