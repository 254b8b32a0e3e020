package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"cvhub/internal/ai"
	"cvhub/internal/dto"
	"cvhub/internal/models"
	"cvhub/internal/repositories"
	"cvhub/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCompleter is a mock implementation of ai.Completer
type MockCompleter struct {
	mock.Mock
}

func (m *MockCompleter) Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	args := m.Called(ctx, prompt, temperature, maxTokens)
	return args.String(0), args.Error(1)
}

func TestAIService_OptimizeDescription(t *testing.T) {
	f := newFixture(t)
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "work experience") && strings.Contains(p, "Position: Backend Engineer") && strings.Contains(p, "fixed bugs")
	}), 0.7, 600).Return("• <b>Cut</b> latency by 40%", nil).Once()

	svc := services.NewAIService(completer, f.guard, f.cvs)
	out, err := svc.OptimizeDescription(context.Background(), dto.OptimizeDescriptionRequest{
		OriginalText: "fixed bugs",
		FieldType:    "work_experience",
		Context:      map[string]string{"position": "Backend Engineer"},
	})
	require.NoError(t, err)
	assert.Equal(t, "fixed bugs", out.Original)
	assert.Equal(t, "• Cut latency by 40%", out.Optimized)
	completer.AssertExpectations(t)
}

func TestAIService_NotConfigured(t *testing.T) {
	f := newFixture(t)
	svc := services.NewAIService(nil, f.guard, f.cvs)

	_, err := svc.OptimizeDescription(context.Background(), dto.OptimizeDescriptionRequest{OriginalText: "x", FieldType: "summary"})
	assert.True(t, errors.Is(err, services.ErrUpstreamUnavailable))
}

func TestAIService_ProviderErrors(t *testing.T) {
	f := newFixture(t)
	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", fmt.Errorf("%w: no choices", ai.ErrBadResponse)).Once()
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", fmt.Errorf("%w: timeout", ai.ErrUnavailable)).Once()

	svc := services.NewAIService(completer, f.guard, f.cvs)
	req := dto.OptimizeDescriptionRequest{OriginalText: "x", FieldType: "generic"}

	_, err := svc.OptimizeDescription(context.Background(), req)
	assert.True(t, errors.Is(err, services.ErrUpstreamBadResponse))

	_, err = svc.OptimizeDescription(context.Background(), req)
	assert.True(t, errors.Is(err, services.ErrUpstreamUnavailable))
	completer.AssertExpectations(t)
}

func TestAIService_GenerateSummary(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner@example.com")
	intruder := f.user(t, "intruder@example.com")
	cv := f.cv(t, owner, "CV")

	start := models.NewDate(2021, time.March, 1)
	works := services.NewSectionService[models.WorkExperience](
		repositories.NewGORMSectionRepository[models.WorkExperience](f.db, "work experience"), f.guard, "Work experience")
	_, err := works.Create(owner.ID, dto.WorkExperienceCreate{CVID: cv.ID, Company: "Acme", Position: "Developer", StartDate: &start})
	require.NoError(t, err)

	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "Developer at Acme") && strings.Contains(p, "casual")
	}), 0.8, 400).Return("Seasoned developer.", nil).Once()

	svc := services.NewAIService(completer, f.guard, f.cvs)
	out, err := svc.GenerateSummary(context.Background(), owner.ID, dto.GenerateSummaryRequest{CVID: cv.ID, Tone: "casual"})
	require.NoError(t, err)
	assert.Equal(t, "Seasoned developer.", out.Summary)

	_, err = svc.GenerateSummary(context.Background(), intruder.ID, dto.GenerateSummaryRequest{CVID: cv.ID})
	assert.True(t, errors.Is(err, services.ErrAccessDenied))
	completer.AssertExpectations(t)
}

func TestAIService_ScoreCV(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner@example.com")
	cv := f.cv(t, owner, "CV")

	completer := new(MockCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, 0.2, 800).
		Return(`Here you go: {"overall": 72, "professionalism": 80, "feedback": ["Add metrics"]}`, nil).Once()
	completer.On("Complete", mock.Anything, mock.Anything, 0.2, 800).
		Return("I cannot score this", nil).Once()

	svc := services.NewAIService(completer, f.guard, f.cvs)

	score, err := svc.ScoreCV(context.Background(), owner.ID, cv.ID)
	require.NoError(t, err)
	require.NotNil(t, score.Overall)
	assert.Equal(t, 72.0, *score.Overall)
	assert.Equal(t, 80.0, *score.Professionalism)
	assert.Nil(t, score.ClarityReadability)
	assert.Equal(t, []string{"Add metrics"}, score.Feedback)

	score, err = svc.ScoreCV(context.Background(), owner.ID, cv.ID)
	require.NoError(t, err)
	assert.Nil(t, score.Overall)
	assert.Equal(t, "I cannot score this", score.Raw)
	completer.AssertExpectations(t)
}
