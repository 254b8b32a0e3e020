// Package server assembles the repositories, services and handlers into a Fiber app.
package server

import (
	"strings"

	"cvhub/internal/ai"
	"cvhub/internal/config"
	"cvhub/internal/dto"
	"cvhub/internal/handlers"
	"cvhub/internal/middleware"
	"cvhub/internal/models"
	"cvhub/internal/repositories"
	"cvhub/internal/services"
	"cvhub/internal/storage"
	"cvhub/internal/translation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

// Deps are the external collaborators of the app. Every field except DB may
// be left nil when the matching backend is not configured.
type Deps struct {
	DB                 *gorm.DB
	Store              storage.ObjectStore
	Locker             services.Locker
	Completer          ai.Completer
	InternalTranslator translation.Translator
	ExternalTranslator translation.Translator
	Events             services.EventPublisher
}

// New builds the Fiber app with every route mounted under cfg.APIPrefix.
func New(cfg *config.Config, deps Deps) *fiber.App {
	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(deps.DB)
	cvRepo := repositories.NewGORMCVRepository(deps.DB)
	shareRepo := repositories.NewGORMShareLinkRepository(deps.DB)
	workRepo := repositories.NewGORMSectionRepository[models.WorkExperience](deps.DB, "work experience")
	educationRepo := repositories.NewGORMSectionRepository[models.Education](deps.DB, "education")
	skillRepo := repositories.NewGORMSectionRepository[models.Skill](deps.DB, "skill")
	projectRepo := repositories.NewGORMSectionRepository[models.Project](deps.DB, "project")

	// --- Services ---
	guard := services.NewOwnershipGuard(cvRepo)
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.AccessTokenExpiry, deps.Events)
	cvService := services.NewCVService(cvRepo, guard, deps.Events)
	exportService := services.NewExportService(guard, shareRepo, userRepo, deps.Store, deps.Locker, services.ExportConfig{
		ShareLinkTTL:      cfg.ShareLinkTTL,
		ProfilePictureTTL: cfg.ProfilePictureTTL,
	}, deps.Events)
	translationService := services.NewTranslationService(deps.InternalTranslator, deps.ExternalTranslator)
	dashboardService := services.NewDashboardService(cvRepo)
	aiService := services.NewAIService(deps.Completer, guard, cvRepo)

	// --- Handlers ---
	debug := cfg.Debug
	authHandler := handlers.NewAuthHandler(authService, exportService, debug)
	cvHandler := handlers.NewCVHandler(cvService, exportService, debug)
	workHandler := handlers.NewSectionHandler[models.WorkExperience, dto.WorkExperienceCreate, dto.WorkExperienceUpdate](
		services.NewSectionService[models.WorkExperience](workRepo, guard, "Work experience"), "/work-experiences", debug)
	educationHandler := handlers.NewSectionHandler[models.Education, dto.EducationCreate, dto.EducationUpdate](
		services.NewSectionService[models.Education](educationRepo, guard, "Education"), "/educations", debug)
	skillHandler := handlers.NewSectionHandler[models.Skill, dto.SkillCreate, dto.SkillUpdate](
		services.NewSectionService[models.Skill](skillRepo, guard, "Skill"), "/skills", debug)
	projectHandler := handlers.NewSectionHandler[models.Project, dto.ProjectCreate, dto.ProjectUpdate](
		services.NewSectionService[models.Project](projectRepo, guard, "Project"), "/projects", debug)
	translationHandler := handlers.NewTranslationHandler(translationService, debug)
	aiHandler := handlers.NewAIHandler(aiService, debug)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, debug)
	healthHandler := handlers.NewHealthHandler(deps.DB, cfg.AppName, cfg.AppVersion)

	app := fiber.New(fiber.Config{
		AppName:   cfg.AppName,
		BodyLimit: 20 * 1024 * 1024,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(corsConfig(cfg)))

	// --- API Routes ---
	api := app.Group(cfg.APIPrefix)
	healthHandler.RegisterRoutes(api)

	requireAuth := middleware.AuthRequired(authService)
	authHandler.RegisterRoutes(api, requireAuth)

	protected := api.Group("", requireAuth)
	cvHandler.RegisterRoutes(protected)
	workHandler.RegisterRoutes(protected)
	educationHandler.RegisterRoutes(protected)
	skillHandler.RegisterRoutes(protected)
	projectHandler.RegisterRoutes(protected)
	translationHandler.RegisterRoutes(protected)
	dashboardHandler.RegisterRoutes(protected)
	aiHandler.RegisterRoutes(protected, middleware.NewRateLimiter(cfg.AIRateLimitPerMinute).Handler())

	return app
}

func corsConfig(cfg *config.Config) cors.Config {
	if len(cfg.CORSOrigins) == 0 {
		return cors.ConfigDefault
	}
	return cors.Config{
		AllowOrigins:     strings.Join(cfg.CORSOrigins, ","),
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
	}
}
