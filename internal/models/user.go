package models

// User is an account that owns CVs and share links.
type User struct {
	Base
	Email             string  `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	HashedPassword    string  `json:"-" gorm:"type:varchar(255);not null"` // never serialized
	FullName          *string `json:"full_name" gorm:"type:varchar(255)"`
	IsActive          bool    `json:"is_active" gorm:"not null"`
	IsSuperuser       bool    `json:"is_superuser" gorm:"not null"`
	ProfilePictureURL *string `json:"profile_picture_url" gorm:"type:text"`

	CVs        []CV        `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ShareLinks []ShareLink `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
