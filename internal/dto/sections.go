package dto

import (
	"cvhub/internal/models"
	"cvhub/internal/sanitize"
)

// WorkExperienceCreate is the body of POST /work-experiences.
type WorkExperienceCreate struct {
	CVID         string       `json:"cv_id" validate:"required"`
	Company      string       `json:"company" validate:"required,max=255"`
	Position     string       `json:"position" validate:"required,max=255"`
	Location     *string      `json:"location" validate:"omitempty,max=255"`
	StartDate    *models.Date `json:"start_date" validate:"required"`
	EndDate      *models.Date `json:"end_date"`
	Description  *string      `json:"description"`
	DisplayOrder int          `json:"display_order"`
}

// ParentCVID returns the CV the new row will belong to.
func (r WorkExperienceCreate) ParentCVID() string { return r.CVID }

// Build converts the request into a model.
func (r WorkExperienceCreate) Build() models.WorkExperience {
	return models.WorkExperience{
		CVID:         r.CVID,
		Company:      sanitize.Text(r.Company),
		Position:     sanitize.Text(r.Position),
		Location:     sanitize.Ptr(r.Location),
		StartDate:    *r.StartDate,
		EndDate:      r.EndDate,
		Description:  sanitize.Ptr(r.Description),
		DisplayOrder: r.DisplayOrder,
	}
}

// WorkExperienceUpdate is the body of PUT /work-experiences/:id. A null
// end_date marks the position as current.
type WorkExperienceUpdate struct {
	Company      Optional[string]      `json:"company" validate:"omitempty,min=1,max=255"`
	Position     Optional[string]      `json:"position" validate:"omitempty,min=1,max=255"`
	Location     Optional[string]      `json:"location" validate:"omitempty,max=255"`
	StartDate    Optional[models.Date] `json:"start_date"`
	EndDate      Optional[models.Date] `json:"end_date"`
	Description  Optional[string]      `json:"description"`
	DisplayOrder Optional[int]         `json:"display_order"`
}

// NullFields names the required columns the body tried to clear.
func (r WorkExperienceUpdate) NullFields() []string {
	return nullNames(
		required{"company", r.Company.IsNull()},
		required{"position", r.Position.IsNull()},
		required{"start_date", r.StartDate.IsNull()},
		required{"display_order", r.DisplayOrder.IsNull()},
	)
}

// ApplyTo copies the supplied fields onto w.
func (r WorkExperienceUpdate) ApplyTo(w *models.WorkExperience) {
	if r.Company.Value != nil {
		w.Company = sanitize.Text(*r.Company.Value)
	}
	if r.Position.Value != nil {
		w.Position = sanitize.Text(*r.Position.Value)
	}
	if r.Location.Set {
		w.Location = sanitize.Ptr(r.Location.Value)
	}
	if r.StartDate.Value != nil {
		w.StartDate = *r.StartDate.Value
	}
	if r.EndDate.Set {
		w.EndDate = r.EndDate.Value
	}
	if r.Description.Set {
		w.Description = sanitize.Ptr(r.Description.Value)
	}
	if r.DisplayOrder.Value != nil {
		w.DisplayOrder = *r.DisplayOrder.Value
	}
}

// EducationCreate is the body of POST /educations.
type EducationCreate struct {
	CVID             string       `json:"cv_id" validate:"required"`
	Institution      string       `json:"institution" validate:"required,max=255"`
	Degree           string       `json:"degree" validate:"required,max=255"`
	FieldOfStudy     *string      `json:"field_of_study" validate:"omitempty,max=255"`
	StartDate        *models.Date `json:"start_date" validate:"required"`
	EndDate          *models.Date `json:"end_date"`
	Description      *string      `json:"description"`
	GPA              *float64     `json:"gpa" validate:"omitempty,gte=0,lte=4"`
	Honors           *string      `json:"honors" validate:"omitempty,max=255"`
	RelevantSubjects *string      `json:"relevant_subjects"`
	ThesisTitle      *string      `json:"thesis_title" validate:"omitempty,max=500"`
	DisplayOrder     int          `json:"display_order"`
}

// ParentCVID returns the CV the new row will belong to.
func (r EducationCreate) ParentCVID() string { return r.CVID }

// Build converts the request into a model.
func (r EducationCreate) Build() models.Education {
	return models.Education{
		CVID:             r.CVID,
		Institution:      sanitize.Text(r.Institution),
		Degree:           sanitize.Text(r.Degree),
		FieldOfStudy:     sanitize.Ptr(r.FieldOfStudy),
		StartDate:        *r.StartDate,
		EndDate:          r.EndDate,
		Description:      sanitize.Ptr(r.Description),
		GPA:              r.GPA,
		Honors:           sanitize.Ptr(r.Honors),
		RelevantSubjects: sanitize.Ptr(r.RelevantSubjects),
		ThesisTitle:      sanitize.Ptr(r.ThesisTitle),
		DisplayOrder:     r.DisplayOrder,
	}
}

// EducationUpdate is the body of PUT /educations/:id.
type EducationUpdate struct {
	Institution      Optional[string]      `json:"institution" validate:"omitempty,min=1,max=255"`
	Degree           Optional[string]      `json:"degree" validate:"omitempty,min=1,max=255"`
	FieldOfStudy     Optional[string]      `json:"field_of_study" validate:"omitempty,max=255"`
	StartDate        Optional[models.Date] `json:"start_date"`
	EndDate          Optional[models.Date] `json:"end_date"`
	Description      Optional[string]      `json:"description"`
	GPA              Optional[float64]     `json:"gpa" validate:"omitempty,gte=0,lte=4"`
	Honors           Optional[string]      `json:"honors" validate:"omitempty,max=255"`
	RelevantSubjects Optional[string]      `json:"relevant_subjects"`
	ThesisTitle      Optional[string]      `json:"thesis_title" validate:"omitempty,max=500"`
	DisplayOrder     Optional[int]         `json:"display_order"`
}

// NullFields names the required columns the body tried to clear.
func (r EducationUpdate) NullFields() []string {
	return nullNames(
		required{"institution", r.Institution.IsNull()},
		required{"degree", r.Degree.IsNull()},
		required{"start_date", r.StartDate.IsNull()},
		required{"display_order", r.DisplayOrder.IsNull()},
	)
}

// ApplyTo copies the supplied fields onto e.
func (r EducationUpdate) ApplyTo(e *models.Education) {
	if r.Institution.Value != nil {
		e.Institution = sanitize.Text(*r.Institution.Value)
	}
	if r.Degree.Value != nil {
		e.Degree = sanitize.Text(*r.Degree.Value)
	}
	if r.FieldOfStudy.Set {
		e.FieldOfStudy = sanitize.Ptr(r.FieldOfStudy.Value)
	}
	if r.StartDate.Value != nil {
		e.StartDate = *r.StartDate.Value
	}
	if r.EndDate.Set {
		e.EndDate = r.EndDate.Value
	}
	if r.Description.Set {
		e.Description = sanitize.Ptr(r.Description.Value)
	}
	if r.GPA.Set {
		e.GPA = r.GPA.Value
	}
	if r.Honors.Set {
		e.Honors = sanitize.Ptr(r.Honors.Value)
	}
	if r.RelevantSubjects.Set {
		e.RelevantSubjects = sanitize.Ptr(r.RelevantSubjects.Value)
	}
	if r.ThesisTitle.Set {
		e.ThesisTitle = sanitize.Ptr(r.ThesisTitle.Value)
	}
	if r.DisplayOrder.Value != nil {
		e.DisplayOrder = *r.DisplayOrder.Value
	}
}

// SkillCreate is the body of POST /skills.
type SkillCreate struct {
	CVID         string  `json:"cv_id" validate:"required"`
	Name         string  `json:"name" validate:"required,max=255"`
	Category     *string `json:"category" validate:"omitempty,max=255"`
	DisplayOrder int     `json:"display_order"`
}

// ParentCVID returns the CV the new row will belong to.
func (r SkillCreate) ParentCVID() string { return r.CVID }

// Build converts the request into a model.
func (r SkillCreate) Build() models.Skill {
	return models.Skill{
		CVID:         r.CVID,
		Name:         sanitize.Text(r.Name),
		Category:     sanitize.Ptr(r.Category),
		DisplayOrder: r.DisplayOrder,
	}
}

// SkillUpdate is the body of PUT /skills/:id.
type SkillUpdate struct {
	Name         Optional[string] `json:"name" validate:"omitempty,min=1,max=255"`
	Category     Optional[string] `json:"category" validate:"omitempty,max=255"`
	DisplayOrder Optional[int]    `json:"display_order"`
}

// NullFields names the required columns the body tried to clear.
func (r SkillUpdate) NullFields() []string {
	return nullNames(
		required{"name", r.Name.IsNull()},
		required{"display_order", r.DisplayOrder.IsNull()},
	)
}

// ApplyTo copies the supplied fields onto s.
func (r SkillUpdate) ApplyTo(s *models.Skill) {
	if r.Name.Value != nil {
		s.Name = sanitize.Text(*r.Name.Value)
	}
	if r.Category.Set {
		s.Category = sanitize.Ptr(r.Category.Value)
	}
	if r.DisplayOrder.Value != nil {
		s.DisplayOrder = *r.DisplayOrder.Value
	}
}

// ProjectCreate is the body of POST /projects.
type ProjectCreate struct {
	CVID         string       `json:"cv_id" validate:"required"`
	Name         string       `json:"name" validate:"required,max=255"`
	Description  *string      `json:"description"`
	Role         *string      `json:"role" validate:"omitempty,max=255"`
	Technologies *string      `json:"technologies"`
	StartDate    *models.Date `json:"start_date"`
	EndDate      *models.Date `json:"end_date"`
	URL          *string      `json:"url" validate:"omitempty,url"`
	GithubURL    *string      `json:"github_url" validate:"omitempty,url"`
	DisplayOrder int          `json:"display_order"`
}

// ParentCVID returns the CV the new row will belong to.
func (r ProjectCreate) ParentCVID() string { return r.CVID }

// Build converts the request into a model.
func (r ProjectCreate) Build() models.Project {
	return models.Project{
		CVID:         r.CVID,
		Name:         sanitize.Text(r.Name),
		Description:  sanitize.Ptr(r.Description),
		Role:         sanitize.Ptr(r.Role),
		Technologies: sanitize.Ptr(r.Technologies),
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		URL:          r.URL,
		GithubURL:    r.GithubURL,
		DisplayOrder: r.DisplayOrder,
	}
}

// ProjectUpdate is the body of PUT /projects/:id.
type ProjectUpdate struct {
	Name         Optional[string]      `json:"name" validate:"omitempty,min=1,max=255"`
	Description  Optional[string]      `json:"description"`
	Role         Optional[string]      `json:"role" validate:"omitempty,max=255"`
	Technologies Optional[string]      `json:"technologies"`
	StartDate    Optional[models.Date] `json:"start_date"`
	EndDate      Optional[models.Date] `json:"end_date"`
	URL          Optional[string]      `json:"url" validate:"omitempty,url"`
	GithubURL    Optional[string]      `json:"github_url" validate:"omitempty,url"`
	DisplayOrder Optional[int]         `json:"display_order"`
}

// NullFields names the required columns the body tried to clear.
func (r ProjectUpdate) NullFields() []string {
	return nullNames(
		required{"name", r.Name.IsNull()},
		required{"display_order", r.DisplayOrder.IsNull()},
	)
}

// ApplyTo copies the supplied fields onto p.
func (r ProjectUpdate) ApplyTo(p *models.Project) {
	if r.Name.Value != nil {
		p.Name = sanitize.Text(*r.Name.Value)
	}
	if r.Description.Set {
		p.Description = sanitize.Ptr(r.Description.Value)
	}
	if r.Role.Set {
		p.Role = sanitize.Ptr(r.Role.Value)
	}
	if r.Technologies.Set {
		p.Technologies = sanitize.Ptr(r.Technologies.Value)
	}
	if r.StartDate.Set {
		p.StartDate = r.StartDate.Value
	}
	if r.EndDate.Set {
		p.EndDate = r.EndDate.Value
	}
	if r.URL.Set {
		p.URL = r.URL.Value
	}
	if r.GithubURL.Set {
		p.GithubURL = r.GithubURL.Value
	}
	if r.DisplayOrder.Value != nil {
		p.DisplayOrder = *r.DisplayOrder.Value
	}
}
