package dto

// OptimizeDescriptionRequest is the body of POST /ai/optimize-description.
type OptimizeDescriptionRequest struct {
	OriginalText string            `json:"original_text" validate:"required"`
	FieldType    string            `json:"field_type" validate:"required"`
	Context      map[string]string `json:"context"`
}

// OptimizeDescriptionResponse pairs the input with the rewritten text.
type OptimizeDescriptionResponse struct {
	Original  string `json:"original"`
	Optimized string `json:"optimized"`
}

// GenerateSummaryRequest is the body of POST /ai/generate-summary.
type GenerateSummaryRequest struct {
	CVID string `json:"cv_id" validate:"required"`
	Tone string `json:"tone" validate:"omitempty,oneof=professional casual formal"`
}

// GenerateSummaryResponse carries the generated paragraph.
type GenerateSummaryResponse struct {
	Summary string `json:"summary"`
}

// ScoreCVRequest is the body of POST /ai/score-cv.
type ScoreCVRequest struct {
	CVID string `json:"cv_id" validate:"required"`
}
