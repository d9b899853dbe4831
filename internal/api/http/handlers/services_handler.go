package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fotos-express/internal/api/dto"
	"github.com/spec-kit/fotos-express/internal/service"
)

// ServicesHandler exposes photography service request endpoints.
type ServicesHandler struct {
	requests *service.RequestService
}

// NewServicesHandler constructs handler.
func NewServicesHandler(requests *service.RequestService) *ServicesHandler {
	return &ServicesHandler{requests: requests}
}

// List handles GET /services.
func (h *ServicesHandler) List(c *fiber.Ctx) error {
	items, err := h.requests.ListServiceRequests(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// Create handles POST /services.
func (h *ServicesHandler) Create(c *fiber.Ctx) error {
	var req dto.ServiceRequestRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	created, err := h.requests.CreateServiceRequest(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(created)
}

// Update handles PUT /services/:id.
func (h *ServicesHandler) Update(c *fiber.Ctx) error {
	var req dto.ServiceRequestUpdateRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	updated, err := h.requests.UpdateServiceRequest(c.UserContext(), c.Params("id"), req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

// Delete handles DELETE /services/:id.
func (h *ServicesHandler) Delete(c *fiber.Ctx) error {
	if err := h.requests.DeleteServiceRequest(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Service deleted"})
}
