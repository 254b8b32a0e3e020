package dto

import (
	"cvhub/internal/models"
	"cvhub/internal/sanitize"
)

// CVCreate is the body of POST /cvs. The owner comes from the token.
type CVCreate struct {
	Title    string  `json:"title" validate:"required,max=255"`
	FullName string  `json:"full_name" validate:"required,max=255"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Phone    *string `json:"phone" validate:"omitempty,max=50"`
	Location *string `json:"location" validate:"omitempty,max=255"`
	Summary  *string `json:"summary"`
}

// Build returns a new CV owned by userID.
func (r CVCreate) Build(userID string) models.CV {
	return models.CV{
		UserID:   userID,
		Title:    sanitize.Text(r.Title),
		FullName: sanitize.Text(r.FullName),
		Email:    r.Email,
		Phone:    sanitize.Ptr(r.Phone),
		Location: sanitize.Ptr(r.Location),
		Summary:  sanitize.Ptr(r.Summary),
	}
}

// CVUpdate is the body of PUT /cvs/:id. Absent keys are left untouched and
// a null clears a nullable column.
type CVUpdate struct {
	Title    Optional[string] `json:"title" validate:"omitempty,min=1,max=255"`
	FullName Optional[string] `json:"full_name" validate:"omitempty,min=1,max=255"`
	Email    Optional[string] `json:"email" validate:"omitempty,email,max=255"`
	Phone    Optional[string] `json:"phone" validate:"omitempty,max=50"`
	Location Optional[string] `json:"location" validate:"omitempty,max=255"`
	Summary  Optional[string] `json:"summary"`
}

// NullFields names the required columns the body tried to clear.
func (r CVUpdate) NullFields() []string {
	return nullNames(
		required{"title", r.Title.IsNull()},
		required{"full_name", r.FullName.IsNull()},
		required{"email", r.Email.IsNull()},
	)
}

// ApplyTo copies the supplied fields onto cv.
func (r CVUpdate) ApplyTo(cv *models.CV) {
	if r.Title.Value != nil {
		cv.Title = sanitize.Text(*r.Title.Value)
	}
	if r.FullName.Value != nil {
		cv.FullName = sanitize.Text(*r.FullName.Value)
	}
	if r.Email.Value != nil {
		cv.Email = *r.Email.Value
	}
	if r.Phone.Set {
		cv.Phone = sanitize.Ptr(r.Phone.Value)
	}
	if r.Location.Set {
		cv.Location = sanitize.Ptr(r.Location.Value)
	}
	if r.Summary.Set {
		cv.Summary = sanitize.Ptr(r.Summary.Value)
	}
}
