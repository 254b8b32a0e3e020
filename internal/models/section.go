package models

// Section is implemented by the four CV child kinds.
type Section interface {
	WorkExperience | Education | Skill | Project
	GetID() string
	OwnerCVID() string
}

// WorkExperience is a job held by the CV owner. A nil EndDate marks the current position.
type WorkExperience struct {
	Base
	CVID         string  `json:"cv_id" gorm:"column:cv_id;type:varchar(36);not null;index"`
	Company      string  `json:"company" gorm:"type:varchar(255);not null"`
	Position     string  `json:"position" gorm:"type:varchar(255);not null"`
	Location     *string `json:"location" gorm:"type:varchar(255)"`
	StartDate    Date    `json:"start_date" gorm:"not null"`
	EndDate      *Date   `json:"end_date"`
	Description  *string `json:"description" gorm:"type:text"`
	DisplayOrder int     `json:"display_order" gorm:"not null;default:0"`
}

// OwnerCVID returns the parent CV id.
func (w WorkExperience) OwnerCVID() string { return w.CVID }

// Education is a degree or course of study. A nil EndDate means currently enrolled.
type Education struct {
	Base
	CVID             string   `json:"cv_id" gorm:"column:cv_id;type:varchar(36);not null;index"`
	Institution      string   `json:"institution" gorm:"type:varchar(255);not null"`
	Degree           string   `json:"degree" gorm:"type:varchar(255);not null"`
	FieldOfStudy     *string  `json:"field_of_study" gorm:"type:varchar(255)"`
	StartDate        Date     `json:"start_date" gorm:"not null"`
	EndDate          *Date    `json:"end_date"`
	Description      *string  `json:"description" gorm:"type:text"`
	GPA              *float64 `json:"gpa" gorm:"column:gpa;type:numeric(3,2)"` // 0.00 - 4.00
	Honors           *string  `json:"honors" gorm:"type:varchar(255)"`
	RelevantSubjects *string  `json:"relevant_subjects" gorm:"type:text"`
	ThesisTitle      *string  `json:"thesis_title" gorm:"type:varchar(500)"`
	DisplayOrder     int      `json:"display_order" gorm:"not null;default:0"`
}

// OwnerCVID returns the parent CV id.
func (e Education) OwnerCVID() string { return e.CVID }

// Skill is a named competence, optionally grouped by category.
type Skill struct {
	Base
	CVID         string  `json:"cv_id" gorm:"column:cv_id;type:varchar(36);not null;index"`
	Name         string  `json:"name" gorm:"type:varchar(255);not null"`
	Category     *string `json:"category" gorm:"type:varchar(255)"`
	DisplayOrder int     `json:"display_order" gorm:"not null;default:0"`
}

// OwnerCVID returns the parent CV id.
func (s Skill) OwnerCVID() string { return s.CVID }

// Project is a piece of work worth showing. A nil EndDate means ongoing.
type Project struct {
	Base
	CVID         string  `json:"cv_id" gorm:"column:cv_id;type:varchar(36);not null;index"`
	Name         string  `json:"name" gorm:"type:varchar(255);not null"`
	Description  *string `json:"description" gorm:"type:text"`
	Role         *string `json:"role" gorm:"type:varchar(255)"`
	Technologies *string `json:"technologies" gorm:"type:text"` // free text, e.g. "Go, Postgres"
	StartDate    *Date   `json:"start_date"`
	EndDate      *Date   `json:"end_date"`
	URL          *string `json:"url" gorm:"column:url;type:text"`
	GithubURL    *string `json:"github_url" gorm:"column:github_url;type:text"`
	DisplayOrder int     `json:"display_order" gorm:"not null;default:0"`
}

// OwnerCVID returns the parent CV id.
func (p Project) OwnerCVID() string { return p.CVID }
