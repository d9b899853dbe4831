package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fotos-express/internal/api/dto"
	"github.com/spec-kit/fotos-express/internal/service"
)

// ActivityClientsHandler exposes endpoints for clients registered at partner
// activities.
type ActivityClientsHandler struct {
	clients     *service.ClientService
	assignments *service.AssignmentService
}

// NewActivityClientsHandler constructs handler.
func NewActivityClientsHandler(clients *service.ClientService, assignments *service.AssignmentService) *ActivityClientsHandler {
	return &ActivityClientsHandler{clients: clients, assignments: assignments}
}

// List handles GET /activity-clients.
func (h *ActivityClientsHandler) List(c *fiber.Ctx) error {
	items, err := h.clients.ListActivityClients(c.UserContext(), service.ActivityClientQuery{})
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// ListByActivity handles GET /activity-clients/activity/:activityId.
func (h *ActivityClientsHandler) ListByActivity(c *fiber.Ctx) error {
	items, err := h.clients.ListActivityClients(c.UserContext(), service.ActivityClientQuery{ActivityID: c.Params("activityId")})
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// ListForStaff handles GET /activity-clients/staff/:staffId.
func (h *ActivityClientsHandler) ListForStaff(c *fiber.Ctx) error {
	items, err := h.assignments.ActivityClientsForStaff(c.UserContext(), c.Params("staffId"))
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// FindByPhone handles GET /activity-clients/phone/:phone?negocioId=&actividadId=.
func (h *ActivityClientsHandler) FindByPhone(c *fiber.Ctx) error {
	scope := service.ActivityClientQuery{
		BusinessID: c.Query("negocioId"),
		ActivityID: c.Query("actividadId"),
	}
	client, err := h.clients.FindActivityClientByPhone(c.UserContext(), c.Params("phone"), scope)
	if err != nil {
		return err
	}
	return c.JSON(client)
}

// Get handles GET /activity-clients/:id.
func (h *ActivityClientsHandler) Get(c *fiber.Ctx) error {
	client, err := h.clients.GetActivityClient(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(client)
}

// Create handles POST /activity-clients.
func (h *ActivityClientsHandler) Create(c *fiber.Ctx) error {
	var req dto.ActivityClientRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	client, err := h.clients.CreateActivityClient(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(client)
}

// Update handles PUT /activity-clients/:id.
func (h *ActivityClientsHandler) Update(c *fiber.Ctx) error {
	var req dto.ActivityClientUpdateRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	client, err := h.clients.UpdateActivityClient(c.UserContext(), c.Params("id"), req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(client)
}

// UploadPhotos handles PUT /activity-clients/:id/photos.
func (h *ActivityClientsHandler) UploadPhotos(c *fiber.Ctx) error {
	var req dto.PhotoUploadRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	client, err := h.clients.DeliverActivityPhotos(c.UserContext(), c.Params("id"), service.PhotoDelivery{
		Photos:  req.Fotos,
		StaffID: req.FotografoID,
	})
	if err != nil {
		return err
	}
	return c.JSON(client)
}

// Delete handles DELETE /activity-clients/:id.
func (h *ActivityClientsHandler) Delete(c *fiber.Ctx) error {
	if err := h.clients.DeleteActivityClient(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Client deleted"})
}
