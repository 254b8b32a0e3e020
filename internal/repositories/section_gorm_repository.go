package repositories

import (
	"errors"
	"fmt"

	"cvhub/internal/models"

	"gorm.io/gorm"
)

// GORMSectionRepository is a GORM implementation of SectionRepository.
type GORMSectionRepository[T models.Section] struct {
	db   *gorm.DB
	name string
}

// NewGORMSectionRepository creates a repository for one section kind. name is used in error messages.
func NewGORMSectionRepository[T models.Section](db *gorm.DB, name string) *GORMSectionRepository[T] {
	return &GORMSectionRepository[T]{db: db, name: name}
}

// Create inserts a new section row.
func (r *GORMSectionRepository[T]) Create(item *T) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", r.name, err)
	}
	return nil
}

// GetByID retrieves one section row.
func (r *GORMSectionRepository[T]) GetByID(id string) (*T, error) {
	var item T
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%s with ID %s: %w", r.name, id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get %s %s: %w", r.name, id, err)
	}
	return &item, nil
}

// ListByCV returns the rows of a CV sorted by display_order with a stable tie-break.
func (r *GORMSectionRepository[T]) ListByCV(cvID string) ([]T, error) {
	items := []T{}
	if err := byDisplayOrder(r.db.Where("cv_id = ?", cvID)).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s of CV %s: %w", r.name, cvID, err)
	}
	return items, nil
}

// Update saves every column of item and refreshes updated_at.
func (r *GORMSectionRepository[T]) Update(item *T) error {
	if err := r.db.Save(item).Error; err != nil {
		return fmt.Errorf("failed to update %s: %w", r.name, err)
	}
	return nil
}

// Delete removes one section row.
func (r *GORMSectionRepository[T]) Delete(id string) error {
	res := r.db.Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete %s %s: %w", r.name, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s with ID %s: %w", r.name, id, ErrRecordNotFound)
	}
	return nil
}
