package dto

import "cvhub/internal/translation"

// TranslateCVRequest is the body of POST /translation/translate-cv.
type TranslateCVRequest struct {
	InputLanguage  string         `json:"input_language" validate:"required"`
	OutputLanguage string         `json:"output_language" validate:"required"`
	CV             translation.CV `json:"cv"`
}

// TranslateCVResponse wraps the translated CV.
type TranslateCVResponse struct {
	Translation translation.CV `json:"translation"`
}
