package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cvhub/internal/ai"
	"cvhub/internal/dto"
	"cvhub/internal/models"
	"cvhub/internal/repositories"
	"cvhub/internal/sanitize"
)

// AIService offers LLM assisted rewriting and scoring of CV content.
type AIService struct {
	completer ai.Completer
	guard     *OwnershipGuard
	cvRepo    repositories.CVRepository
}

// NewAIService creates a new AIService. completer may be nil when no LLM is configured.
func NewAIService(completer ai.Completer, guard *OwnershipGuard, cvRepo repositories.CVRepository) *AIService {
	return &AIService{completer: completer, guard: guard, cvRepo: cvRepo}
}

// OptimizeDescription rewrites a single field using the prompt for its kind.
func (s *AIService) OptimizeDescription(ctx context.Context, req dto.OptimizeDescriptionRequest) (*dto.OptimizeDescriptionResponse, error) {
	prompt := ai.ParseFieldKind(req.FieldType).Render(req.OriginalText, ai.ContextFromMap(req.Context))
	out, err := s.complete(ctx, prompt, 0.7, 600)
	if err != nil {
		return nil, err
	}
	return &dto.OptimizeDescriptionResponse{Original: req.OriginalText, Optimized: out}, nil
}

// GenerateSummary drafts a summary from the top entries of an owned CV.
func (s *AIService) GenerateSummary(ctx context.Context, userID string, req dto.GenerateSummaryRequest) (*dto.GenerateSummaryResponse, error) {
	cv, err := s.loadOwned(userID, req.CVID)
	if err != nil {
		return nil, err
	}

	var in ai.SummaryInput
	for _, w := range cv.WorkExperiences[:min(len(cv.WorkExperiences), 3)] {
		in.Experiences = append(in.Experiences, w.Position+" at "+w.Company)
	}
	for _, e := range cv.Educations[:min(len(cv.Educations), 2)] {
		in.Educations = append(in.Educations, e.Degree+" from "+e.Institution)
	}
	for _, sk := range cv.Skills[:min(len(cv.Skills), 10)] {
		in.Skills = append(in.Skills, sk.Name)
	}

	out, err := s.complete(ctx, ai.SummaryPrompt(in, req.Tone), 0.8, 400)
	if err != nil {
		return nil, err
	}
	return &dto.GenerateSummaryResponse{Summary: out}, nil
}

// ScoreCV asks the LLM for a structured assessment of an owned CV.
func (s *AIService) ScoreCV(ctx context.Context, userID, cvID string) (*ai.Score, error) {
	cv, err := s.loadOwned(userID, cvID)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(scoreInput(cv))
	if err != nil {
		return nil, fmt.Errorf("failed to serialize CV for scoring: %w", err)
	}

	raw, err := s.complete(ctx, ai.ScorePrompt(string(payload)), 0.2, 800)
	if err != nil {
		return nil, err
	}
	score := ai.ParseScore(raw)
	return &score, nil
}

func (s *AIService) loadOwned(userID, cvID string) (*models.CV, error) {
	if _, err := s.guard.VerifyCVOwnership(cvID, userID); err != nil {
		return nil, err
	}
	return s.cvRepo.GetWithRelations(cvID)
}

func (s *AIService) complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	if s.completer == nil {
		return "", newError(ErrUpstreamUnavailable, "AI service not configured", nil)
	}
	out, err := s.completer.Complete(ctx, prompt, temperature, maxTokens)
	if err != nil {
		switch {
		case errors.Is(err, ai.ErrBadResponse):
			return "", newError(ErrUpstreamBadResponse, "AI service returned an invalid response", err)
		default:
			return "", newError(ErrUpstreamUnavailable, "AI service is unavailable", err)
		}
	}
	return sanitize.Text(out), nil
}

// scoreInput is the reduced view of a CV sent for scoring. Contact details are
// replaced by presence flags.
func scoreInput(cv *models.CV) map[string]interface{} {
	present := func(s *string) bool { return s != nil && *s != "" }

	works := make([]map[string]interface{}, 0, len(cv.WorkExperiences))
	for _, w := range cv.WorkExperiences {
		works = append(works, map[string]interface{}{
			"position":     w.Position,
			"company":      w.Company,
			"description":  w.Description,
			"has_dates":    !w.StartDate.IsZero(),
			"has_location": present(w.Location),
		})
	}
	educations := make([]map[string]interface{}, 0, len(cv.Educations))
	for _, e := range cv.Educations {
		educations = append(educations, map[string]interface{}{
			"degree":         e.Degree,
			"institution":    e.Institution,
			"field_of_study": e.FieldOfStudy,
			"has_dates":      !e.StartDate.IsZero(),
		})
	}
	skills := make([]map[string]interface{}, 0, len(cv.Skills))
	for _, sk := range cv.Skills {
		skills = append(skills, map[string]interface{}{"name": sk.Name})
	}
	projects := make([]map[string]interface{}, 0, len(cv.Projects))
	for _, p := range cv.Projects {
		projects = append(projects, map[string]interface{}{
			"name":         p.Name,
			"description":  p.Description,
			"technologies": p.Technologies,
			"has_url":      present(p.URL) || present(p.GithubURL),
		})
	}

	return map[string]interface{}{
		"general": map[string]interface{}{
			"title":        cv.Title,
			"summary":      cv.Summary,
			"has_phone":    present(cv.Phone),
			"has_location": present(cv.Location),
			"has_email":    cv.Email != "",
		},
		"work_experiences": works,
		"educations":       educations,
		"skills":           skills,
		"projects":         projects,
	}
}
