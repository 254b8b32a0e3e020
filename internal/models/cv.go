package models

// CV is a resume document owned by exactly one user.
type CV struct {
	Base
	UserID   string  `json:"user_id" gorm:"type:varchar(36);not null;index"`
	Title    string  `json:"title" gorm:"type:varchar(255);not null"`
	FullName string  `json:"full_name" gorm:"type:varchar(255);not null"`
	Email    string  `json:"email" gorm:"type:varchar(255);not null"`
	Phone    *string `json:"phone" gorm:"type:varchar(50)"`
	Location *string `json:"location" gorm:"type:varchar(255)"`
	Summary  *string `json:"summary" gorm:"type:text"`

	WorkExperiences []WorkExperience `json:"-" gorm:"foreignKey:CVID;constraint:OnDelete:CASCADE"`
	Educations      []Education      `json:"-" gorm:"foreignKey:CVID;constraint:OnDelete:CASCADE"`
	Skills          []Skill          `json:"-" gorm:"foreignKey:CVID;constraint:OnDelete:CASCADE"`
	Projects        []Project        `json:"-" gorm:"foreignKey:CVID;constraint:OnDelete:CASCADE"`
	ShareLinks      []ShareLink      `json:"-" gorm:"foreignKey:CVID;constraint:OnDelete:CASCADE"`
}

// CVWithRelations is a CV serialized together with its four section lists.
type CVWithRelations struct {
	CV
	WorkExperiences []WorkExperience `json:"work_experiences"`
	Educations      []Education      `json:"educations"`
	Skills          []Skill          `json:"skills"`
	Projects        []Project        `json:"projects"`
}

// WithRelations copies the preloaded sections into a CVWithRelations.
// Nil slices become empty so they serialize as [].
func (c CV) WithRelations() CVWithRelations {
	out := CVWithRelations{
		CV:              c,
		WorkExperiences: c.WorkExperiences,
		Educations:      c.Educations,
		Skills:          c.Skills,
		Projects:        c.Projects,
	}
	if out.WorkExperiences == nil {
		out.WorkExperiences = []WorkExperience{}
	}
	if out.Educations == nil {
		out.Educations = []Education{}
	}
	if out.Skills == nil {
		out.Skills = []Skill{}
	}
	if out.Projects == nil {
		out.Projects = []Project{}
	}
	return out
}
