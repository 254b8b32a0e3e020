package dto

import "time"

// ShareLinkResponse is returned by POST /cvs/:id/share-link.
type ShareLinkResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
