package services

import (
	"context"
	"errors"

	"cvhub/internal/translation"
)

// TranslationService picks the provider for a language pair and calls it.
type TranslationService struct {
	backends map[translation.Backend]translation.Translator
}

// NewTranslationService creates a TranslationService. Either translator may be
// nil when its provider is not configured.
func NewTranslationService(internal, external translation.Translator) *TranslationService {
	backends := make(map[translation.Backend]translation.Translator)
	if internal != nil {
		backends[translation.BackendInternal] = internal
	}
	if external != nil {
		backends[translation.BackendExternal] = external
	}
	return &TranslationService{backends: backends}
}

// TranslateCV translates cv from input to output language on behalf of userID.
// A payload that names a different owner is rejected.
func (s *TranslationService) TranslateCV(ctx context.Context, userID string, cv translation.CV, input, output string) (*translation.CV, error) {
	if cv.UserID != nil && *cv.UserID != "" && *cv.UserID != userID {
		return nil, newError(ErrForbidden, "Not enough permissions to translate this CV", nil)
	}

	source := translation.NormalizeLanguage(input)
	target := translation.NormalizeLanguage(output)

	backend, ok := translation.Route(source, target)
	if !ok {
		return nil, newError(ErrUnsupportedDirection, "Unsupported translation direction: "+source+" -> "+target, nil)
	}
	translator, ok := s.backends[backend]
	if !ok {
		return nil, newError(ErrUpstreamUnavailable, "Translation provider for "+source+" -> "+target+" is not configured", nil)
	}

	out, err := translator.TranslateCV(ctx, cv, source, target)
	if err != nil {
		switch {
		case errors.Is(err, translation.ErrUnavailable):
			return nil, newError(ErrUpstreamUnavailable, "Translation provider is unavailable", err)
		case errors.Is(err, translation.ErrBadResponse):
			return nil, newError(ErrUpstreamBadResponse, "Translation provider returned an invalid response", err)
		default:
			return nil, newError(ErrUpstreamFailure, "Translation failed", err)
		}
	}
	return out, nil
}
