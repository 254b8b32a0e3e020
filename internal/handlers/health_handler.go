package handlers

import (
	"cvhub/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// HealthHandler reports liveness and database reachability.
type HealthHandler struct {
	db      *gorm.DB
	appName string
	version string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *gorm.DB, appName, version string) *HealthHandler {
	return &HealthHandler{db: db, appName: appName, version: version}
}

// RegisterRoutes registers the health route with the Fiber app.
func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	status, dbStatus, code := "healthy", "connected", fiber.StatusOK
	if err := database.Ping(h.db); err != nil {
		log.Error().Err(err).Msg("health check: database unreachable")
		status, dbStatus, code = "unhealthy", "disconnected", fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status":   status,
		"app_name": h.appName,
		"version":  h.version,
		"database": dbStatus,
	})
}
