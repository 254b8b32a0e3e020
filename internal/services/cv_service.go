package services

import (
	"cvhub/internal/dto"
	"cvhub/internal/models"
	"cvhub/internal/repositories"
)

// DefaultListLimit is the page size used when the client sends none.
const DefaultListLimit = 100

// CVService handles CV documents.
type CVService struct {
	cvRepo repositories.CVRepository
	guard  *OwnershipGuard
	events EventPublisher
}

// NewCVService creates a new CVService.
func NewCVService(cvRepo repositories.CVRepository, guard *OwnershipGuard, events EventPublisher) *CVService {
	return &CVService{cvRepo: cvRepo, guard: guard, events: events}
}

// Create stores a new CV owned by userID.
func (s *CVService) Create(userID string, req dto.CVCreate) (*models.CV, error) {
	cv := req.Build(userID)
	if err := s.cvRepo.Create(&cv); err != nil {
		return nil, err
	}
	publish(s.events, EventCVCreated, map[string]string{"cv_id": cv.ID, "user_id": userID})
	return &cv, nil
}

// List returns one page of the user's CVs.
func (s *CVService) List(userID string, skip, limit int) ([]models.CV, error) {
	if skip < 0 {
		return nil, newError(ErrValidation, "skip must not be negative", nil)
	}
	if limit <= 0 {
		return nil, newError(ErrValidation, "limit must be positive", nil)
	}
	return s.cvRepo.ListByUser(userID, skip, limit)
}

// Get returns an owned CV with its sections in display order.
func (s *CVService) Get(userID, cvID string) (*models.CVWithRelations, error) {
	if _, err := s.guard.VerifyCVOwnership(cvID, userID); err != nil {
		return nil, err
	}
	cv, err := s.cvRepo.GetWithRelations(cvID)
	if err != nil {
		return nil, err
	}
	out := cv.WithRelations()
	return &out, nil
}

// Update applies the supplied fields of req to an owned CV.
func (s *CVService) Update(userID, cvID string, req dto.CVUpdate) (*models.CV, error) {
	if err := rejectNulls(req.NullFields()); err != nil {
		return nil, err
	}
	cv, err := s.guard.VerifyCVOwnership(cvID, userID)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(cv)
	if err := s.cvRepo.Update(cv); err != nil {
		return nil, err
	}
	return cv, nil
}

// Delete removes an owned CV together with its sections and share links.
func (s *CVService) Delete(userID, cvID string) error {
	if _, err := s.guard.VerifyCVOwnership(cvID, userID); err != nil {
		return err
	}
	if err := s.cvRepo.Delete(cvID); err != nil {
		return err
	}
	publish(s.events, EventCVDeleted, map[string]string{"cv_id": cvID, "user_id": userID})
	return nil
}
