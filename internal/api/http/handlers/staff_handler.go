package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fotos-express/internal/api/dto"
	"github.com/spec-kit/fotos-express/internal/auth"
	"github.com/spec-kit/fotos-express/internal/domain"
	"github.com/spec-kit/fotos-express/internal/service"
	apperrors "github.com/spec-kit/fotos-express/pkg/util"
)

// StaffHandler exposes staff applications and staff account endpoints.
type StaffHandler struct {
	requests    *service.RequestService
	onboarding  *service.OnboardingService
	auth        *service.AuthService
	assignments *service.AssignmentService
}

// StaffHandlerDeps groups the services behind the staff routes.
type StaffHandlerDeps struct {
	Requests    *service.RequestService
	Onboarding  *service.OnboardingService
	Auth        *service.AuthService
	Assignments *service.AssignmentService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(deps StaffHandlerDeps) *StaffHandler {
	return &StaffHandler{
		requests:    deps.Requests,
		onboarding:  deps.Onboarding,
		auth:        deps.Auth,
		assignments: deps.Assignments,
	}
}

// ListApplications handles GET /staff.
func (h *StaffHandler) ListApplications(c *fiber.Ctx) error {
	items, err := h.requests.ListApplications(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// SubmitApplication handles POST /staff.
func (h *StaffHandler) SubmitApplication(c *fiber.Ctx) error {
	var req dto.StaffApplicationRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	application, err := h.requests.SubmitApplication(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.JSON(application)
}

// UpdateApplicationStatus handles PUT /staff/:id/status?status=.
func (h *StaffHandler) UpdateApplicationStatus(c *fiber.Ctx) error {
	status := domain.ApplicationStatus(c.Query("status"))
	if _, err := h.requests.SetApplicationStatus(c.UserContext(), c.Params("id"), status); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("Staff status updated to %s", status)})
}

// DeleteApplication handles DELETE /staff/:id.
func (h *StaffHandler) DeleteApplication(c *fiber.Ctx) error {
	if err := h.requests.DeleteApplication(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Staff application deleted"})
}

// Approve handles POST /staff/approve/:applicationId.
func (h *StaffHandler) Approve(c *fiber.Ctx) error {
	result, err := h.onboarding.Approve(c.UserContext(), c.Params("applicationId"))
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// ValidateToken handles GET /staff/validate-token?token=.
func (h *StaffHandler) ValidateToken(c *fiber.Ctx) error {
	status, err := h.onboarding.ValidateToken(c.UserContext(), c.Query("token"))
	if err != nil {
		return err
	}
	return c.JSON(status)
}

// Activate handles POST /staff/activate.
func (h *StaffHandler) Activate(c *fiber.Ctx) error {
	var req dto.ActivateAccountRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	user, err := h.onboarding.Activate(c.UserContext(), req.Token, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Account activated successfully",
		"email":   user.Email,
	})
}

// Login handles POST /staff/login.
func (h *StaffHandler) Login(c *fiber.Ctx) error {
	var req dto.StaffLoginRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	result, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// ChangePassword handles POST /staff/change-password.
func (h *StaffHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.PasswordChangeRequest
	if err := dto.Decode(c.Body(), &req); err != nil {
		return err
	}
	if err := h.auth.ChangePassword(c.UserContext(), req.Email, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Password changed successfully"})
}

// GetUser handles GET /staff/user/:email.
func (h *StaffHandler) GetUser(c *fiber.Ctx) error {
	profile, err := h.auth.GetUser(c.UserContext(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// ListUsers handles GET /staff/users.
func (h *StaffHandler) ListUsers(c *fiber.Ctx) error {
	profiles, err := h.auth.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(profiles)
}

// Me handles GET /staff/me for the bearer token's account.
func (h *StaffHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	profile, err := h.auth.Profile(c.UserContext(), principal.Staff)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// MyClients handles GET /staff/me/clients: the caller's work queue across
// assigned zones and activities.
func (h *StaffHandler) MyClients(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	queue, err := h.assignments.ClientsForStaff(c.UserContext(), principal.Staff.ID)
	if err != nil {
		return err
	}
	return c.JSON(queue)
}
