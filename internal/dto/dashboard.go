package dto

import (
	"time"

	"cvhub/internal/models"
)

// IncompleteCV summarizes a CV that is below full completion.
type IncompleteCV struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	CompletionRate  float64  `json:"completion_rate"`
	MissingSections []string `json:"missing_sections"`
}

// DashboardStats is returned by GET /dashboard/stats.
type DashboardStats struct {
	TotalCVs          int            `json:"total_cvs"`
	TemplatesUsed     int            `json:"templates_used"`
	AvgCompletionRate float64        `json:"avg_completion_rate"`
	LastActivity      time.Time      `json:"last_activity"`
	RecentCVs         []models.CV    `json:"recent_cvs"`
	IncompleteCVs     []IncompleteCV `json:"incomplete_cvs"`
}
