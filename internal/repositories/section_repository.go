package repositories

import "cvhub/internal/models"

// SectionRepository defines data access shared by the four CV section kinds.
type SectionRepository[T models.Section] interface {
	Create(item *T) error
	GetByID(id string) (*T, error)
	ListByCV(cvID string) ([]T, error)
	Update(item *T) error
	Delete(id string) error
}
