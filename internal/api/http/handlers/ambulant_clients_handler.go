package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fotos-express/internal/api/dto"
	"github.com/spec-kit/fotos-express/internal/service"
)

// AmbulantClientsHandler exposes walk-up client endpoints.
type AmbulantClientsHandler struct {
	clients     *service.ClientService
	assignments *service.AssignmentService
}

// NewAmbulantClientsHandler constructs handler.
func NewAmbulantClientsHandler(clients *service.ClientService, assignments *service.AssignmentService) *AmbulantClientsHandler {
	return &AmbulantClientsHandler{clients: clients, assignments: assignments}
}

// List handles GET /ambulant-clients.
func (h *AmbulantClientsHandler) List(c *fiber.Ctx) error {
	items, err := h.clients.ListAmbulantClients(c.UserContext(), "")
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// ListByZone handles GET /ambulant-clients/zone/:zoneId.
func (h *AmbulantClientsHandler) ListByZone(c *fiber.Ctx) error {
	items, err := h.clients.ListAmbulantClients(c.UserContext(), c.Params("zoneId"))
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// ListForStaff handles GET /ambulant-clients/staff/:staffId.
func (h *AmbulantClientsHandler) ListForStaff(c *fiber.Ctx) error {
	items, err := h.assignments.AmbulantClientsForStaff(c.UserContext(), c.Params("staffId"))
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// FindByPhone handles GET /ambulant-clients/phone/:phone.
func (h *AmbulantClientsHandler) FindByPhone(c *fiber.Ctx) error {
	client, err := h.clients.FindAmbulantClientByPhone(c.UserContext(), c.Params("phone"))
	if err != nil {
		return err
	}
	return c.JSON(client)
}

// Get handles GET /ambulant-clients/:id.
func (h *AmbulantClientsHandler) Get(c *fiber.Ctx) error {
	client, err := h.clients.GetAmbulantClient(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(client)
}

// Create handles POST /ambulant-clients.
func (h *AmbulantClientsHandler) Create(c *fiber.Ctx) error {
	var req dto.AmbulantClientRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	client, err := h.clients.CreateAmbulantClient(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(client)
}

// Update handles PUT /ambulant-clients/:id.
func (h *AmbulantClientsHandler) Update(c *fiber.Ctx) error {
	var req dto.AmbulantClientUpdateRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	client, err := h.clients.UpdateAmbulantClient(c.UserContext(), c.Params("id"), req.Patch())
	if err != nil {
		return err
	}
	return c.JSON(client)
}

// UploadPhotos handles PUT /ambulant-clients/:id/photos.
func (h *AmbulantClientsHandler) UploadPhotos(c *fiber.Ctx) error {
	var req dto.PhotoUploadRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	client, err := h.clients.DeliverAmbulantPhotos(c.UserContext(), c.Params("id"), service.PhotoDelivery{
		Photos:  req.Fotos,
		StaffID: req.FotografoID,
	})
	if err != nil {
		return err
	}
	return c.JSON(client)
}

// Delete handles DELETE /ambulant-clients/:id.
func (h *AmbulantClientsHandler) Delete(c *fiber.Ctx) error {
	if err := h.clients.DeleteAmbulantClient(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Client deleted"})
}
