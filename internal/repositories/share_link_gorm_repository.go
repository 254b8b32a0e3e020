package repositories

import (
	"errors"
	"fmt"
	"time"

	"cvhub/internal/models"

	"gorm.io/gorm"
)

// GORMShareLinkRepository is a GORM implementation of ShareLinkRepository.
type GORMShareLinkRepository struct {
	db *gorm.DB
}

// NewGORMShareLinkRepository creates a new instance of GORMShareLinkRepository.
func NewGORMShareLinkRepository(db *gorm.DB) *GORMShareLinkRepository {
	return &GORMShareLinkRepository{db: db}
}

// Create inserts a share link.
func (r *GORMShareLinkRepository) Create(link *models.ShareLink) error {
	if err := r.db.Create(link).Error; err != nil {
		return fmt.Errorf("failed to create share link: %w", err)
	}
	return nil
}

// FindActive returns the most recently created link for (cvID, userID) that expires after now.
func (r *GORMShareLinkRepository) FindActive(cvID, userID string, now time.Time) (*models.ShareLink, error) {
	var link models.ShareLink
	err := r.db.
		Where("cv_id = ? AND user_id = ? AND expires_at > ?", cvID, userID, now).
		Order("created_at DESC").Order("id DESC").
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("active share link for CV %s: %w", cvID, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to find share link for CV %s: %w", cvID, err)
	}
	return &link, nil
}

// ListByCV returns every link of a CV, expired ones included, newest first.
func (r *GORMShareLinkRepository) ListByCV(cvID string) ([]models.ShareLink, error) {
	var links []models.ShareLink
	if err := r.db.Where("cv_id = ?", cvID).Order("created_at DESC").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to list share links of CV %s: %w", cvID, err)
	}
	return links, nil
}
