package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fotos-express/internal/api/dto"
	"github.com/spec-kit/fotos-express/internal/service"
)

// BusinessesHandler exposes partner business endpoints.
type BusinessesHandler struct {
	catalog *service.CatalogService
}

// NewBusinessesHandler constructs handler.
func NewBusinessesHandler(catalog *service.CatalogService) *BusinessesHandler {
	return &BusinessesHandler{catalog: catalog}
}

// List handles GET /businesses.
func (h *BusinessesHandler) List(c *fiber.Ctx) error {
	items, err := h.catalog.ListBusinesses(c.UserContext(), false)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// ListActive handles GET /businesses/active.
func (h *BusinessesHandler) ListActive(c *fiber.Ctx) error {
	items, err := h.catalog.ListBusinesses(c.UserContext(), true)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Create handles POST /businesses.
func (h *BusinessesHandler) Create(c *fiber.Ctx) error {
	var req dto.BusinessRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	business, err := h.catalog.CreateBusiness(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(business)
}

// Update handles PUT /businesses/:id.
func (h *BusinessesHandler) Update(c *fiber.Ctx) error {
	var req dto.BusinessUpdateRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	business, err := h.catalog.UpdateBusiness(c.UserContext(), c.Params("id"), req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(business)
}

// Delete handles DELETE /businesses/:id and its activities.
func (h *BusinessesHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.DeleteBusiness(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Business and its activities deleted"})
}
