package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fotos-express/internal/api/dto"
	"github.com/spec-kit/fotos-express/internal/service"
)

// ActivitiesHandler exposes activity endpoints.
type ActivitiesHandler struct {
	catalog     *service.CatalogService
	assignments *service.AssignmentService
}

// NewActivitiesHandler constructs handler.
func NewActivitiesHandler(catalog *service.CatalogService, assignments *service.AssignmentService) *ActivitiesHandler {
	return &ActivitiesHandler{catalog: catalog, assignments: assignments}
}

func (h *ActivitiesHandler) list(c *fiber.Ctx, query service.ActivityQuery) error {
	items, err := h.catalog.ListActivities(c.UserContext(), query)
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// List handles GET /activities.
func (h *ActivitiesHandler) List(c *fiber.Ctx) error {
	return h.list(c, service.ActivityQuery{})
}

// ListActive handles GET /activities/active.
func (h *ActivitiesHandler) ListActive(c *fiber.Ctx) error {
	return h.list(c, service.ActivityQuery{ActiveOnly: true})
}

// ListByBusiness handles GET /activities/business/:businessId.
func (h *ActivitiesHandler) ListByBusiness(c *fiber.Ctx) error {
	return h.list(c, service.ActivityQuery{BusinessID: c.Params("businessId")})
}

// Create handles POST /activities.
func (h *ActivitiesHandler) Create(c *fiber.Ctx) error {
	var req dto.ActivityRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	activity, err := h.catalog.CreateActivity(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(activity)
}

// Update handles PUT /activities/:id.
func (h *ActivitiesHandler) Update(c *fiber.Ctx) error {
	var req dto.ActivityUpdateRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	activity, err := h.catalog.UpdateActivity(c.UserContext(), c.Params("id"), req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(activity)
}

// AssignStaff handles PUT /activities/:id/staff.
func (h *ActivitiesHandler) AssignStaff(c *fiber.Ctx) error {
	var req dto.AssignStaffRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	activity, err := h.assignments.AssignActivity(c.UserContext(), c.Params("id"), req.StaffIDs)
	if err != nil {
		return err
	}
	return c.JSON(activity)
}

// Delete handles DELETE /activities/:id.
func (h *ActivitiesHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalog.DeleteActivity(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Activity deleted"})
}
