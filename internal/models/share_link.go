package models

import "time"

// ShareLink is a signed, time-limited URL to an exported CV PDF.
// Expired rows are kept as history.
type ShareLink struct {
	Base
	CVID      string    `json:"cv_id" gorm:"column:cv_id;type:varchar(36);not null;index"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);not null;index"`
	URL       string    `json:"url" gorm:"column:url;type:text;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
}

// Active reports whether the link is still valid at now.
func (s ShareLink) Active(now time.Time) bool {
	return s.ExpiresAt.After(now)
}
