package handlers

import (
	"cvhub/internal/dto"
	"cvhub/internal/middleware"
	"cvhub/internal/models"
	"cvhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CVHandler handles HTTP requests for CV documents.
type CVHandler struct {
	base
	cvService     *services.CVService
	exportService *services.ExportService
}

// NewCVHandler creates a new CVHandler.
func NewCVHandler(cvService *services.CVService, exportService *services.ExportService, debug bool) *CVHandler {
	return &CVHandler{base: newBase(debug), cvService: cvService, exportService: exportService}
}

// RegisterRoutes registers the CV routes with the Fiber app.
func (h *CVHandler) RegisterRoutes(router fiber.Router) {
	cvRoutes := router.Group("/cvs")
	cvRoutes.Post("/", h.HandleCreate)
	cvRoutes.Get("/", h.HandleList)
	cvRoutes.Get("/:id", h.HandleGet)
	cvRoutes.Put("/:id", h.HandleUpdate)
	cvRoutes.Delete("/:id", h.HandleDelete)
	cvRoutes.Post("/:id/share-link", h.HandleShareLink)
}

// HandleCreate creates a CV owned by the caller.
func (h *CVHandler) HandleCreate(c *fiber.Ctx) error {
	var req dto.CVCreate
	if err := h.bind(c, &req); err != nil {
		return h.fail(c, err)
	}
	cv, err := h.cvService.Create(middleware.CurrentUser(c).ID, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cv)
}

// HandleList returns a page of the caller's CVs.
func (h *CVHandler) HandleList(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", services.DefaultListLimit)
	cvs, err := h.cvService.List(middleware.CurrentUser(c).ID, skip, limit)
	if err != nil {
		return h.fail(c, err)
	}
	if cvs == nil {
		cvs = []models.CV{}
	}
	return c.JSON(cvs)
}

// HandleGet returns a CV with its sections.
func (h *CVHandler) HandleGet(c *fiber.Ctx) error {
	cv, err := h.cvService.Get(middleware.CurrentUser(c).ID, c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(cv)
}

// HandleUpdate applies a partial update.
func (h *CVHandler) HandleUpdate(c *fiber.Ctx) error {
	var req dto.CVUpdate
	if err := h.bind(c, &req); err != nil {
		return h.fail(c, err)
	}
	cv, err := h.cvService.Update(middleware.CurrentUser(c).ID, c.Params("id"), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(cv)
}

// HandleDelete removes a CV and everything under it.
func (h *CVHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.cvService.Delete(middleware.CurrentUser(c).ID, c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleShareLink uploads the rendered PDF and returns a time-limited link to it.
// An unexpired link is returned as is.
func (h *CVHandler) HandleShareLink(c *fiber.Ctx) error {
	file, err := readFile(c)
	if err != nil {
		return h.fail(c, err)
	}
	link, err := h.exportService.CreateShareLink(c.UserContext(), c.Params("id"), middleware.CurrentUser(c).ID, file)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(dto.ShareLinkResponse{URL: link.URL, ExpiresAt: link.ExpiresAt})
}
