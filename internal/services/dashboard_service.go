package services

import (
	"math"
	"sort"

	"cvhub/internal/dto"
	"cvhub/internal/models"
	"cvhub/internal/repositories"
)

const (
	completionUnits = 10
	recentCVCount   = 3
	incompleteCount = 5
	maxTemplates    = 3
)

// DashboardService aggregates per-user CV statistics.
type DashboardService struct {
	cvRepo repositories.CVRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(cvRepo repositories.CVRepository) *DashboardService {
	return &DashboardService{cvRepo: cvRepo}
}

// Completion scores a CV with its sections loaded. Title, name and email
// always count; phone, location, summary and each non-empty section add one
// unit out of ten.
func Completion(cv models.CV) (float64, []string) {
	units := 3
	for _, field := range []*string{cv.Phone, cv.Location, cv.Summary} {
		if field != nil && *field != "" {
			units++
		}
	}

	missing := []string{}
	sections := []struct {
		name  string
		count int
	}{
		{"Work Experience", len(cv.WorkExperiences)},
		{"Education", len(cv.Educations)},
		{"Skills", len(cv.Skills)},
		{"Projects", len(cv.Projects)},
	}
	for _, s := range sections {
		if s.count > 0 {
			units++
		} else {
			missing = append(missing, s.name)
		}
	}

	return round1(float64(units) / completionUnits * 100), missing
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Stats builds the dashboard of user.
func (s *DashboardService) Stats(user *models.User) (*dto.DashboardStats, error) {
	cvs, err := s.cvRepo.ListByUserWithRelations(user.ID)
	if err != nil {
		return nil, err
	}

	stats := &dto.DashboardStats{
		TotalCVs:      len(cvs),
		LastActivity:  user.UpdatedAt,
		RecentCVs:     []models.CV{},
		IncompleteCVs: []dto.IncompleteCV{},
	}
	if len(cvs) == 0 {
		return stats, nil
	}

	var sum float64
	for _, cv := range cvs {
		rate, missing := Completion(cv)
		sum += rate
		if rate < 100 {
			stats.IncompleteCVs = append(stats.IncompleteCVs, dto.IncompleteCV{
				ID:              cv.ID,
				Title:           cv.Title,
				CompletionRate:  rate,
				MissingSections: missing,
			})
		}
	}

	// cvs arrive most recently updated first
	stats.LastActivity = cvs[0].UpdatedAt
	stats.AvgCompletionRate = round1(sum / float64(len(cvs)))
	stats.TemplatesUsed = min(len(cvs), maxTemplates)

	stats.RecentCVs = append(stats.RecentCVs, cvs[:min(len(cvs), recentCVCount)]...)

	sort.SliceStable(stats.IncompleteCVs, func(i, j int) bool {
		return stats.IncompleteCVs[i].CompletionRate < stats.IncompleteCVs[j].CompletionRate
	})
	if len(stats.IncompleteCVs) > incompleteCount {
		stats.IncompleteCVs = stats.IncompleteCVs[:incompleteCount]
	}

	return stats, nil
}
