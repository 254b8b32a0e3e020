package translation

import (
	"strings"
	"time"

	"cvhub/internal/models"
)

// CV is a possibly partial CV as sent by clients for translation.
// Every field is optional; unknown JSON fields are ignored.
type CV struct {
	ID              *string          `json:"id"`
	UserID          *string          `json:"user_id"`
	Title           *string          `json:"title"`
	FullName        *string          `json:"full_name"`
	Email           *string          `json:"email"`
	Phone           *string          `json:"phone"`
	Location        *string          `json:"location"`
	Summary         *string          `json:"summary"`
	CreatedAt       *time.Time       `json:"created_at"`
	UpdatedAt       *time.Time       `json:"updated_at"`
	WorkExperiences []WorkExperience `json:"work_experiences"`
	Educations      []Education      `json:"educations" validate:"dive"`
	Skills          []Skill          `json:"skills"`
	Projects        []Project        `json:"projects"`
}

// WorkExperience is the translatable view of a work experience.
type WorkExperience struct {
	ID           *string      `json:"id"`
	CVID         *string      `json:"cv_id"`
	Company      *string      `json:"company"`
	Position     *string      `json:"position"`
	Location     *string      `json:"location"`
	StartDate    *models.Date `json:"start_date"`
	EndDate      *models.Date `json:"end_date"`
	Description  *string      `json:"description"`
	DisplayOrder *int         `json:"display_order"`
	CreatedAt    *time.Time   `json:"created_at"`
	UpdatedAt    *time.Time   `json:"updated_at"`
}

// Education is the translatable view of an education entry.
type Education struct {
	ID               *string      `json:"id"`
	CVID             *string      `json:"cv_id"`
	Institution      *string      `json:"institution"`
	Degree           *string      `json:"degree"`
	FieldOfStudy     *string      `json:"field_of_study"`
	StartDate        *models.Date `json:"start_date"`
	EndDate          *models.Date `json:"end_date"`
	Description      *string      `json:"description"`
	GPA              *float64     `json:"gpa" validate:"omitempty,gte=0,lte=4"`
	Honors           *string      `json:"honors"`
	RelevantSubjects *string      `json:"relevant_subjects"`
	ThesisTitle      *string      `json:"thesis_title"`
	DisplayOrder     *int         `json:"display_order"`
	CreatedAt        *time.Time   `json:"created_at"`
	UpdatedAt        *time.Time   `json:"updated_at"`
}

// Project is the translatable view of a project.
type Project struct {
	ID           *string      `json:"id"`
	CVID         *string      `json:"cv_id"`
	Name         *string      `json:"name"`
	Description  *string      `json:"description"`
	Role         *string      `json:"role"`
	Technologies *string      `json:"technologies"`
	StartDate    *models.Date `json:"start_date"`
	EndDate      *models.Date `json:"end_date"`
	URL          *string      `json:"url"`
	GithubURL    *string      `json:"github_url"`
	DisplayOrder *int         `json:"display_order"`
	CreatedAt    *time.Time   `json:"created_at"`
	UpdatedAt    *time.Time   `json:"updated_at"`
}

// Skill is the translatable view of a skill.
type Skill struct {
	ID           *string    `json:"id"`
	CVID         *string    `json:"cv_id"`
	Name         *string    `json:"name"`
	Category     *string    `json:"category"`
	DisplayOrder *int       `json:"display_order"`
	CreatedAt    *time.Time `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// Clone returns a copy whose section slices do not alias cv's.
func (cv CV) Clone() CV {
	out := cv
	out.WorkExperiences = append([]WorkExperience{}, cv.WorkExperiences...)
	out.Educations = append([]Education{}, cv.Educations...)
	out.Skills = append([]Skill{}, cv.Skills...)
	out.Projects = append([]Project{}, cv.Projects...)
	return out
}

// batch collects every non-blank text field of a CV in a fixed order together
// with the slot each translation is written back to.
type batch struct {
	texts []string
	slots []**string
}

func (b *batch) add(field **string) {
	if *field == nil {
		return
	}
	cleaned := strings.TrimSpace(**field)
	if cleaned == "" {
		return
	}
	b.texts = append(b.texts, cleaned)
	b.slots = append(b.slots, field)
}

// scatter writes translated[i] into slot i. len(translated) must equal len(b.texts).
func (b *batch) scatter(translated []string) {
	for i, text := range translated {
		value := text
		*b.slots[i] = &value
	}
}

// collect builds the batch for cv. cv is modified in place by scatter, so callers pass a clone.
func collect(cv *CV) *batch {
	b := &batch{}
	b.add(&cv.Title)
	b.add(&cv.FullName)
	b.add(&cv.Location)
	b.add(&cv.Summary)
	for i := range cv.WorkExperiences {
		w := &cv.WorkExperiences[i]
		b.add(&w.Company)
		b.add(&w.Position)
		b.add(&w.Location)
		b.add(&w.Description)
	}
	for i := range cv.Educations {
		e := &cv.Educations[i]
		b.add(&e.Institution)
		b.add(&e.Degree)
		b.add(&e.FieldOfStudy)
		b.add(&e.Description)
		b.add(&e.Honors)
		b.add(&e.RelevantSubjects)
		b.add(&e.ThesisTitle)
	}
	for i := range cv.Projects {
		p := &cv.Projects[i]
		b.add(&p.Name)
		b.add(&p.Description)
		b.add(&p.Role)
		b.add(&p.Technologies)
	}
	for i := range cv.Skills {
		s := &cv.Skills[i]
		b.add(&s.Name)
		b.add(&s.Category)
	}
	return b
}
