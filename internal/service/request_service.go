package service

import (
	"context"
	"time"

	"github.com/spec-kit/fotos-express/internal/domain"
	"github.com/spec-kit/fotos-express/internal/repository"
	apperrors "github.com/spec-kit/fotos-express/pkg/util"
)

// RequestService manages inbound quote requests and photographer applications.
type RequestService struct {
	services     repository.ServiceRequestRepository
	applications repository.StaffApplicationRepository
	now          func() time.Time
}

// RequestDependencies bundles repositories.
type RequestDependencies struct {
	ServiceRequestRepo repository.ServiceRequestRepository
	ApplicationRepo    repository.StaffApplicationRepository
	Clock              func() time.Time
}

// NewRequestService creates the service.
func NewRequestService(deps RequestDependencies) *RequestService {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &RequestService{
		services:     deps.ServiceRequestRepo,
		applications: deps.ApplicationRepo,
		now:          clock,
	}
}

// ListServiceRequests returns every quote request.
func (s *RequestService) ListServiceRequests(ctx context.Context) ([]domain.ServiceRequest, error) {
	return s.services.List(ctx)
}

// CreateServiceRequest stores a quote request, defaulting status to pendiente.
func (s *RequestService) CreateServiceRequest(ctx context.Context, request *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	if request.Status == "" {
		request.Status = domain.ServiceRequestPending
	}
	if request.RequestedAt == "" {
		request.RequestedAt = s.now().UTC().Format(domain.RegistrationDateLayout)
	}
	if err := s.services.Create(ctx, request); err != nil {
		return nil, apperrors.MapError(err)
	}
	return request, nil
}

// UpdateServiceRequest replaces the fields present in patch. detalles and
// contacto are replaced as whole objects.
func (s *RequestService) UpdateServiceRequest(ctx context.Context, id string, patch repository.Patch) (*domain.ServiceRequest, error) {
	return s.services.Update(ctx, id, patch)
}

// DeleteServiceRequest removes a quote request.
func (s *RequestService) DeleteServiceRequest(ctx context.Context, id string) error {
	return s.services.Delete(ctx, id)
}

// ListApplications returns every staff application.
func (s *RequestService) ListApplications(ctx context.Context) ([]domain.StaffApplication, error) {
	return s.applications.List(ctx)
}

// SubmitApplication stores a new pending application.
func (s *RequestService) SubmitApplication(ctx context.Context, application *domain.StaffApplication) (*domain.StaffApplication, error) {
	application.Status = domain.ApplicationPending
	if application.Specialties == nil {
		application.Specialties = []string{}
	}
	if application.ReferencePhotos == nil {
		application.ReferencePhotos = []string{}
	}
	application.SubmittedAt = s.now().UTC().Format(domain.RegistrationDateLayout)
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, apperrors.MapError(err)
	}
	return application, nil
}

// SetApplicationStatus records a review decision without creating an account.
// Only aprobado and rechazado are accepted.
func (s *RequestService) SetApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.StaffApplication, error) {
	if status != domain.ApplicationApproved && status != domain.ApplicationRejected {
		return nil, apperrors.NewValidationError("Invalid status", map[string]any{"status": status})
	}
	return s.applications.UpdateStatus(ctx, id, status)
}

// DeleteApplication removes an application.
func (s *RequestService) DeleteApplication(ctx context.Context, id string) error {
	return s.applications.Delete(ctx, id)
}
