package services

import (
	"errors"

	"cvhub/internal/models"
	"cvhub/internal/repositories"
)

// OwnershipGuard is the single check that a CV belongs to the acting user.
type OwnershipGuard struct {
	cvRepo repositories.CVRepository
}

// NewOwnershipGuard creates a new OwnershipGuard.
func NewOwnershipGuard(cvRepo repositories.CVRepository) *OwnershipGuard {
	return &OwnershipGuard{cvRepo: cvRepo}
}

// VerifyCVOwnership returns the CV when userID owns it. A missing CV and a CV
// owned by someone else produce the same ErrAccessDenied.
func (g *OwnershipGuard) VerifyCVOwnership(cvID, userID string) (*models.CV, error) {
	cv, err := g.cvRepo.GetByID(cvID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, newError(ErrAccessDenied, "CV not found", nil)
		}
		return nil, err
	}
	if cv.UserID != userID {
		return nil, newError(ErrAccessDenied, "CV not found", nil)
	}
	return cv, nil
}
