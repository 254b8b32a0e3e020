package handlers

import (
	"cvhub/internal/middleware"
	"cvhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the per-user statistics.
type DashboardHandler struct {
	base
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *services.DashboardService, debug bool) *DashboardHandler {
	return &DashboardHandler{base: newBase(debug), dashboardService: dashboardService}
}

// RegisterRoutes registers the dashboard routes with the Fiber app.
func (h *DashboardHandler) RegisterRoutes(router fiber.Router) {
	router.Group("/dashboard").Get("/stats", h.HandleStats)
}

func (h *DashboardHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.Stats(middleware.CurrentUser(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(stats)
}
