package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fotos-express/internal/service"
)

// SeedHandler exposes the demo data loader.
type SeedHandler struct {
	seed *service.SeedService
}

// NewSeedHandler constructs handler.
func NewSeedHandler(seed *service.SeedService) *SeedHandler {
	return &SeedHandler{seed: seed}
}

// Seed handles POST /seed.
func (h *SeedHandler) Seed(c *fiber.Ctx) error {
	result, err := h.seed.Seed(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(result)
}
