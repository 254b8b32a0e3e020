package handlers

import (
	"cvhub/internal/dto"
	"cvhub/internal/middleware"
	"cvhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// TranslationHandler handles CV translation requests.
type TranslationHandler struct {
	base
	translationService *services.TranslationService
}

// NewTranslationHandler creates a new TranslationHandler.
func NewTranslationHandler(translationService *services.TranslationService, debug bool) *TranslationHandler {
	return &TranslationHandler{base: newBase(debug), translationService: translationService}
}

// RegisterRoutes registers the translation routes with the Fiber app.
func (h *TranslationHandler) RegisterRoutes(router fiber.Router) {
	router.Group("/translation").Post("/translate-cv", h.HandleTranslateCV)
}

// HandleTranslateCV translates the CV payload in the body. Nothing is persisted.
func (h *TranslationHandler) HandleTranslateCV(c *fiber.Ctx) error {
	var req dto.TranslateCVRequest
	if err := h.bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	out, err := h.translationService.TranslateCV(c.UserContext(), middleware.CurrentUser(c).ID, req.CV, req.InputLanguage, req.OutputLanguage)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dto.TranslateCVResponse{Translation: *out})
}
