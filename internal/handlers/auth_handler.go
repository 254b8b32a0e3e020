package handlers

import (
	"cvhub/internal/dto"
	"cvhub/internal/middleware"
	"cvhub/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles HTTP requests for authentication and the account itself.
type AuthHandler struct {
	base
	authService   *services.AuthService
	exportService *services.ExportService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, exportService *services.ExportService, debug bool) *AuthHandler {
	return &AuthHandler{
		base:          newBase(debug),
		authService:   authService,
		exportService: exportService,
	}
}

// RegisterRoutes registers the authentication routes. requireAuth guards the account routes.
func (h *AuthHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
	authRoutes.Get("/me", requireAuth, h.HandleMe)
	authRoutes.Post("/test-token", requireAuth, h.HandleMe)
	authRoutes.Delete("/me", requireAuth, h.HandleDeleteMe)
	authRoutes.Post("/profile-picture", requireAuth, h.HandleProfilePicture)
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := h.bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	user, err := h.authService.Register(req.Email, req.Password, req.FullName)
	if err != nil {
		log.Info().Err(err).Str("email", req.Email).Msg("registration rejected")
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleLogin issues an access token. Accepts form or JSON bodies.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := h.bind(c, &req); err != nil {
		return h.fail(c, err)
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// HandleMe returns the authenticated user.
func (h *AuthHandler) HandleMe(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}

// HandleDeleteMe deletes the account and everything it owns.
func (h *AuthHandler) HandleDeleteMe(c *fiber.Ctx) error {
	if err := h.authService.DeleteAccount(middleware.CurrentUser(c).ID); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleProfilePicture replaces the profile picture of the authenticated user.
func (h *AuthHandler) HandleProfilePicture(c *fiber.Ctx) error {
	file, err := readFile(c)
	if err != nil {
		return h.fail(c, err)
	}

	user, err := h.exportService.UploadProfilePicture(c.UserContext(), middleware.CurrentUser(c), file)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(user)
}
