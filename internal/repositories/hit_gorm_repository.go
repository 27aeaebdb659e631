package repositories

import (
	"fmt"

	"portfolio/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMHitRepository is a GORM implementation of HitRepository.
type GORMHitRepository struct {
	db *gorm.DB
}

// NewGORMHitRepository creates a new instance of GORMHitRepository.
func NewGORMHitRepository(db *gorm.DB) *GORMHitRepository {
	return &GORMHitRepository{
		db: db,
	}
}

// Create records a single page hit.
func (r *GORMHitRepository) Create(hit *models.Hit) error {
	if hit.ID == "" {
		hit.ID = uuid.New().String()
	}
	if err := r.db.Create(hit).Error; err != nil {
		return fmt.Errorf("failed to create hit: %w", err)
	}
	return nil
}

// GetByPath retrieves hits for a single path, newest first.
func (r *GORMHitRepository) GetByPath(path string) ([]models.Hit, error) {
	var hits []models.Hit
	if err := r.db.Where("path = ?", path).Order("created_at DESC").Find(&hits).Error; err != nil {
		return nil, fmt.Errorf("failed to get hits for path %s: %w", path, err)
	}
	return hits, nil
}

// CountAll returns the total number of recorded hits.
func (r *GORMHitRepository) CountAll() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Hit{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count hits: %w", err)
	}
	return total, nil
}

// CountByPath returns the hit count per distinct path. Order is not
// significant.
func (r *GORMHitRepository) CountByPath() ([]PathCount, error) {
	var counts []PathCount
	err := r.db.Model(&models.Hit{}).
		Select("path, COUNT(*) as count").
		Group("path").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count hits by path: %w", err)
	}
	return counts, nil
}
