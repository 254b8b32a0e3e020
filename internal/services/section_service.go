package services

import (
	"errors"

	"cvhub/internal/models"
	"cvhub/internal/repositories"
)

// SectionCreate is a create request for one section kind.
type SectionCreate[T models.Section] interface {
	ParentCVID() string
	Build() T
}

// SectionUpdate is a partial update for one section kind.
type SectionUpdate[T models.Section] interface {
	NullFields() []string
	ApplyTo(item *T)
}

// SectionService implements CRUD for a CV section kind. Every operation is
// checked against the owner of the parent CV.
type SectionService[T models.Section] struct {
	repo  repositories.SectionRepository[T]
	guard *OwnershipGuard
	label string
}

// NewSectionService creates a SectionService. label names the kind in messages, e.g. "Skill".
func NewSectionService[T models.Section](repo repositories.SectionRepository[T], guard *OwnershipGuard, label string) *SectionService[T] {
	return &SectionService[T]{repo: repo, guard: guard, label: label}
}

// Create adds a row to a CV owned by userID.
func (s *SectionService[T]) Create(userID string, req SectionCreate[T]) (*T, error) {
	if _, err := s.guard.VerifyCVOwnership(req.ParentCVID(), userID); err != nil {
		return nil, err
	}
	item := req.Build()
	if err := s.repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByCV returns the rows of an owned CV in display order.
func (s *SectionService[T]) ListByCV(userID, cvID string) ([]T, error) {
	if _, err := s.guard.VerifyCVOwnership(cvID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByCV(cvID)
}

// Get returns one row whose parent CV is owned by userID.
func (s *SectionService[T]) Get(userID, id string) (*T, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, newError(ErrNotFound, s.label+" not found", nil)
		}
		return nil, err
	}
	if _, err := s.guard.VerifyCVOwnership((*item).OwnerCVID(), userID); err != nil {
		return nil, err
	}
	return item, nil
}

// Update applies the supplied fields of req to an owned row.
func (s *SectionService[T]) Update(userID, id string, req SectionUpdate[T]) (*T, error) {
	if err := rejectNulls(req.NullFields()); err != nil {
		return nil, err
	}
	item, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(item)
	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an owned row.
func (s *SectionService[T]) Delete(userID, id string) error {
	if _, err := s.Get(userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return newError(ErrNotFound, s.label+" not found", nil)
		}
		return err
	}
	return nil
}
