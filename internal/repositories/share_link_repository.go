package repositories

import (
	"time"

	"cvhub/internal/models"
)

// ShareLinkRepository defines the interface for share link data access.
type ShareLinkRepository interface {
	Create(link *models.ShareLink) error
	FindActive(cvID, userID string, now time.Time) (*models.ShareLink, error)
	ListByCV(cvID string) ([]models.ShareLink, error)
}
