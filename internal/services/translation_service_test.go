package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"cvhub/internal/services"
	"cvhub/internal/translation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTranslator is a mock implementation of translation.Translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) TranslateCV(ctx context.Context, cv translation.CV, source, target string) (*translation.CV, error) {
	args := m.Called(ctx, cv, source, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*translation.CV), args.Error(1)
}

func TestTranslationService_RoutesByDirection(t *testing.T) {
	internal := new(MockTranslator)
	external := new(MockTranslator)
	svc := services.NewTranslationService(internal, external)
	ctx := context.Background()

	in := translation.CV{UserID: strPtr("user-1"), Summary: strPtr("Experienced engineer")}

	internal.On("TranslateCV", mock.Anything, in, "en", "es").
		Return(&translation.CV{UserID: strPtr("user-1"), Summary: strPtr("Ingeniero con experiencia")}, nil).Once()
	out, err := svc.TranslateCV(ctx, "user-1", in, "English", "es-MX")
	require.NoError(t, err)
	assert.Equal(t, "Ingeniero con experiencia", *out.Summary)

	back := translation.CV{Summary: strPtr("Ingeniero")}
	external.On("TranslateCV", mock.Anything, back, "es", "en").
		Return(&translation.CV{Summary: strPtr("Engineer")}, nil).Once()
	out, err = svc.TranslateCV(ctx, "user-1", back, "spanish", "en")
	require.NoError(t, err)
	assert.Equal(t, "Engineer", *out.Summary)

	internal.AssertExpectations(t)
	external.AssertExpectations(t)
}

func TestTranslationService_Rejections(t *testing.T) {
	internal := new(MockTranslator)
	svc := services.NewTranslationService(internal, nil)
	ctx := context.Background()

	_, err := svc.TranslateCV(ctx, "user-1", translation.CV{}, "en", "en")
	assert.True(t, errors.Is(err, services.ErrUnsupportedDirection))

	_, err = svc.TranslateCV(ctx, "user-1", translation.CV{}, "en", "fr")
	assert.True(t, errors.Is(err, services.ErrUnsupportedDirection))

	_, err = svc.TranslateCV(ctx, "user-1", translation.CV{UserID: strPtr("user-2")}, "en", "es")
	assert.True(t, errors.Is(err, services.ErrForbidden))

	// external provider not configured
	_, err = svc.TranslateCV(ctx, "user-1", translation.CV{}, "es", "en")
	assert.True(t, errors.Is(err, services.ErrUpstreamUnavailable))

	internal.AssertNotCalled(t, "TranslateCV", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTranslationService_MapsProviderErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{"unreachable", fmt.Errorf("dial: %w", translation.ErrUnavailable), services.ErrUpstreamUnavailable},
		{"bad body", fmt.Errorf("decode: %w", translation.ErrBadResponse), services.ErrUpstreamBadResponse},
		{"non-2xx", fmt.Errorf("status 500: %w", translation.ErrFailed), services.ErrUpstreamFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			internal := new(MockTranslator)
			internal.On("TranslateCV", mock.Anything, mock.Anything, "en", "es").Return(nil, tc.err).Once()

			_, err := services.NewTranslationService(internal, nil).TranslateCV(context.Background(), "user-1", translation.CV{}, "en", "es")
			assert.True(t, errors.Is(err, tc.want))
			assert.True(t, errors.Is(err, tc.err))
		})
	}
}
