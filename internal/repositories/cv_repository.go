package repositories

import "cvhub/internal/models"

// CVRepository defines the interface for CV data access.
type CVRepository interface {
	Create(cv *models.CV) error
	ListByUser(userID string, skip, limit int) ([]models.CV, error)
	ListByUserWithRelations(userID string) ([]models.CV, error)
	GetByID(id string) (*models.CV, error)
	GetWithRelations(id string) (*models.CV, error)
	Update(cv *models.CV) error
	Delete(id string) error
}
