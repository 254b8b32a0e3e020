package handlers

import (
	"cvhub/internal/dto"
	"cvhub/internal/middleware"
	"cvhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AIHandler exposes the writing assistant.
type AIHandler struct {
	base
	aiService *services.AIService
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(aiService *services.AIService, debug bool) *AIHandler {
	return &AIHandler{base: newBase(debug), aiService: aiService}
}

// RegisterRoutes registers the AI routes behind limiter.
func (h *AIHandler) RegisterRoutes(router fiber.Router, limiter fiber.Handler) {
	aiRoutes := router.Group("/ai", limiter)
	aiRoutes.Post("/optimize-description", h.HandleOptimizeDescription)
	aiRoutes.Post("/generate-summary", h.HandleGenerateSummary)
	aiRoutes.Post("/score-cv", h.HandleScoreCV)
}

func (h *AIHandler) HandleOptimizeDescription(c *fiber.Ctx) error {
	var req dto.OptimizeDescriptionRequest
	if err := h.bind(c, &req); err != nil {
		return h.fail(c, err)
	}
	out, err := h.aiService.OptimizeDescription(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

func (h *AIHandler) HandleGenerateSummary(c *fiber.Ctx) error {
	var req dto.GenerateSummaryRequest
	if err := h.bind(c, &req); err != nil {
		return h.fail(c, err)
	}
	out, err := h.aiService.GenerateSummary(c.UserContext(), middleware.CurrentUser(c).ID, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

func (h *AIHandler) HandleScoreCV(c *fiber.Ctx) error {
	var req dto.ScoreCVRequest
	if err := h.bind(c, &req); err != nil {
		return h.fail(c, err)
	}
	out, err := h.aiService.ScoreCV(c.UserContext(), middleware.CurrentUser(c).ID, req.CVID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}
