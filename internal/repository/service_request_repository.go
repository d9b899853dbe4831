package repository

import (
	"context"

	"github.com/spec-kit/fotos-express/internal/domain"
	"github.com/spec-kit/fotos-express/internal/persistence"
	"github.com/spec-kit/fotos-express/pkg/util"
)

// ServiceRequestRepository manages direct quote requests.
type ServiceRequestRepository interface {
	Create(ctx context.Context, request *domain.ServiceRequest) error
	Insert(ctx context.Context, request *domain.ServiceRequest) error
	GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error)
	List(ctx context.Context) ([]domain.ServiceRequest, error)
	Update(ctx context.Context, id string, patch Patch) (*domain.ServiceRequest, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type serviceRequestRepository struct {
	docs documents[domain.ServiceRequest]
}

// NewServiceRequestRepository constructs the repository on a document store.
func NewServiceRequestRepository(store persistence.DocumentStore) ServiceRequestRepository {
	return &serviceRequestRepository{docs: newDocuments[domain.ServiceRequest](store, persistence.CollectionServiceRequests, util.PrefixServiceRequest, "Service request")}
}

func (r *serviceRequestRepository) Create(ctx context.Context, request *domain.ServiceRequest) error {
	return r.docs.create(ctx, request, func(id string) { request.ID = id })
}

func (r *serviceRequestRepository) Insert(ctx context.Context, request *domain.ServiceRequest) error {
	return r.docs.insert(ctx, request.ID, request)
}

func (r *serviceRequestRepository) GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	return r.docs.get(ctx, id)
}

func (r *serviceRequestRepository) List(ctx context.Context) ([]domain.ServiceRequest, error) {
	return r.docs.find(ctx, persistence.All())
}

func (r *serviceRequestRepository) Update(ctx context.Context, id string, patch Patch) (*domain.ServiceRequest, error) {
	return r.docs.update(ctx, id, patch)
}

func (r *serviceRequestRepository) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}

func (r *serviceRequestRepository) Clear(ctx context.Context) error {
	return r.docs.drop(ctx)
}
