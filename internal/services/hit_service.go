package services

import (
	"portfolio/internal/models"
	"portfolio/internal/repositories"
)

// HitService handles page-view tracking and aggregation.
type HitService struct {
	repo repositories.HitRepository
}

// NewHitService creates a new HitService.
func NewHitService(repo repositories.HitRepository) *HitService {
	return &HitService{
		repo: repo,
	}
}

// RecordHit appends one hit row for a page view.
func (s *HitService) RecordHit(path, userAgent string) (*models.Hit, error) {
	hit := &models.Hit{
		Path:      path,
		UserAgent: userAgent,
	}
	if err := s.repo.Create(hit); err != nil {
		return nil, err
	}
	return hit, nil
}

// GetHitsByPath returns the hits recorded against a single path,
// newest first.
func (s *HitService) GetHitsByPath(path string) ([]models.Hit, error) {
	return s.repo.GetByPath(path)
}

// Summary returns the total hit count and the per-path counts. The
// per-path list is unordered.
func (s *HitService) Summary() (int64, []repositories.PathCount, error) {
	total, err := s.repo.CountAll()
	if err != nil {
		return 0, nil, err
	}
	counts, err := s.repo.CountByPath()
	if err != nil {
		return 0, nil, err
	}
	return total, counts, nil
}
