package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fotos-express/internal/api/dto"
	"github.com/spec-kit/fotos-express/internal/service"
)

// ZonesHandler exposes zone endpoints.
type ZonesHandler struct {
	catalog     *service.CatalogService
	assignments *service.AssignmentService
}

// NewZonesHandler constructs handler.
func NewZonesHandler(catalog *service.CatalogService, assignments *service.AssignmentService) *ZonesHandler {
	return &ZonesHandler{catalog: catalog, assignments: assignments}
}

// List handles GET /zones.
func (h *ZonesHandler) List(c *fiber.Ctx) error {
	zones, err := h.catalog.ListZones(c.UserContext(), false)
	if err != nil {
		return err
	}
	return c.JSON(zones)
}

// ListActive handles GET /zones/active.
func (h *ZonesHandler) ListActive(c *fiber.Ctx) error {
	zones, err := h.catalog.ListZones(c.UserContext(), true)
	if err != nil {
		return err
	}
	return c.JSON(zones)
}

// Create handles POST /zones.
func (h *ZonesHandler) Create(c *fiber.Ctx) error {
	var req dto.ZoneRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	zone, err := h.catalog.CreateZone(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(zone)
}

// Update handles PUT /zones/:id.
func (h *ZonesHandler) Update(c *fiber.Ctx) error {
	var req dto.ZoneUpdateRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	zone, err := h.catalog.UpdateZone(c.UserContext(), c.Params("id"), req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(zone)
}

// AssignStaff handles PUT /zones/:id/staff.
func (h *ZonesHandler) AssignStaff(c *fiber.Ctx) error {
	var req dto.AssignStaffRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	zone, err := h.assignments.AssignZone(c.UserContext(), c.Params("id"), req.StaffIDs)
	if err != nil {
		return err
	}
	return c.JSON(zone)
}

// Delete handles DELETE /zones/:id.
func (h *ZonesHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.DeleteZone(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Zone deleted"})
}
