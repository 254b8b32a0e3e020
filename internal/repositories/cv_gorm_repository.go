package repositories

import (
	"errors"
	"fmt"

	"cvhub/internal/models"

	"gorm.io/gorm"
)

// GORMCVRepository is a GORM implementation of CVRepository.
type GORMCVRepository struct {
	db *gorm.DB
}

// NewGORMCVRepository creates a new instance of GORMCVRepository.
func NewGORMCVRepository(db *gorm.DB) *GORMCVRepository {
	return &GORMCVRepository{db: db}
}

// Create inserts a new CV.
func (r *GORMCVRepository) Create(cv *models.CV) error {
	if err := r.db.Create(cv).Error; err != nil {
		return fmt.Errorf("failed to create CV: %w", err)
	}
	return nil
}

// ListByUser returns one page of the user's CVs in creation order.
func (r *GORMCVRepository) ListByUser(userID string, skip, limit int) ([]models.CV, error) {
	var cvs []models.CV
	err := r.db.Where("user_id = ?", userID).
		Order("created_at ASC").Order("id ASC").
		Offset(skip).Limit(limit).
		Find(&cvs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list CVs of user %s: %w", userID, err)
	}
	return cvs, nil
}

// ListByUserWithRelations returns every CV of the user, most recently updated first, sections preloaded.
func (r *GORMCVRepository) ListByUserWithRelations(userID string) ([]models.CV, error) {
	var cvs []models.CV
	err := preloadSections(r.db).
		Where("user_id = ?", userID).
		Order("updated_at DESC").Order("id ASC").
		Find(&cvs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list CVs of user %s: %w", userID, err)
	}
	return cvs, nil
}

// GetByID retrieves a CV without its sections.
func (r *GORMCVRepository) GetByID(id string) (*models.CV, error) {
	var cv models.CV
	if err := r.db.First(&cv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("CV with ID %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get CV %s: %w", id, err)
	}
	return &cv, nil
}

// GetWithRelations retrieves a CV with its four section lists ordered for display.
func (r *GORMCVRepository) GetWithRelations(id string) (*models.CV, error) {
	var cv models.CV
	if err := preloadSections(r.db).First(&cv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("CV with ID %s: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get CV %s: %w", id, err)
	}
	return &cv, nil
}

// Update saves every column of cv and refreshes updated_at.
func (r *GORMCVRepository) Update(cv *models.CV) error {
	if err := r.db.Omit("WorkExperiences", "Educations", "Skills", "Projects", "ShareLinks").Save(cv).Error; err != nil {
		return fmt.Errorf("failed to update CV %s: %w", cv.ID, err)
	}
	return nil
}

// Delete removes a CV and everything it owns in one transaction.
func (r *GORMCVRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		children := append(sectionModels(), &models.ShareLink{})
		for _, child := range children {
			if err := tx.Where("cv_id = ?", id).Delete(child).Error; err != nil {
				return fmt.Errorf("failed to delete children of CV %s: %w", id, err)
			}
		}
		res := tx.Delete(&models.CV{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete CV %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("CV with ID %s: %w", id, ErrRecordNotFound)
		}
		return nil
	})
}

func preloadSections(db *gorm.DB) *gorm.DB {
	return db.
		Preload("WorkExperiences", byDisplayOrder).
		Preload("Educations", byDisplayOrder).
		Preload("Skills", byDisplayOrder).
		Preload("Projects", byDisplayOrder)
}

// byDisplayOrder is the ordering of every section list: display_order, then insertion.
func byDisplayOrder(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC").Order("created_at ASC").Order("id ASC")
}
