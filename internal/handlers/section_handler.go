package handlers

import (
	"cvhub/internal/middleware"
	"cvhub/internal/models"
	"cvhub/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SectionHandler serves the CRUD routes of one CV section kind.
// C and U are the create and update request bodies of that kind.
type SectionHandler[T models.Section, C services.SectionCreate[T], U services.SectionUpdate[T]] struct {
	base
	service *services.SectionService[T]
	path    string
}

// NewSectionHandler creates a SectionHandler mounted at path, e.g. "/skills".
func NewSectionHandler[T models.Section, C services.SectionCreate[T], U services.SectionUpdate[T]](
	service *services.SectionService[T], path string, debug bool,
) *SectionHandler[T, C, U] {
	return &SectionHandler[T, C, U]{base: newBase(debug), service: service, path: path}
}

// RegisterRoutes registers the section routes with the Fiber app.
func (h *SectionHandler[T, C, U]) RegisterRoutes(router fiber.Router) {
	routes := router.Group(h.path)
	routes.Post("/", h.HandleCreate)
	routes.Get("/cv/:cv_id", h.HandleListByCV)
	routes.Get("/:id", h.HandleGet)
	routes.Put("/:id", h.HandleUpdate)
	routes.Delete("/:id", h.HandleDelete)
}

func (h *SectionHandler[T, C, U]) HandleCreate(c *fiber.Ctx) error {
	var req C
	if err := h.bind(c, &req); err != nil {
		return h.fail(c, err)
	}
	item, err := h.service.Create(middleware.CurrentUser(c).ID, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *SectionHandler[T, C, U]) HandleListByCV(c *fiber.Ctx) error {
	items, err := h.service.ListByCV(middleware.CurrentUser(c).ID, c.Params("cv_id"))
	if err != nil {
		return h.fail(c, err)
	}
	if items == nil {
		items = []T{}
	}
	return c.JSON(items)
}

func (h *SectionHandler[T, C, U]) HandleGet(c *fiber.Ctx) error {
	item, err := h.service.Get(middleware.CurrentUser(c).ID, c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(item)
}

func (h *SectionHandler[T, C, U]) HandleUpdate(c *fiber.Ctx) error {
	var req U
	if err := h.bind(c, &req); err != nil {
		return h.fail(c, err)
	}
	item, err := h.service.Update(middleware.CurrentUser(c).ID, c.Params("id"), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(item)
}

func (h *SectionHandler[T, C, U]) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(middleware.CurrentUser(c).ID, c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
