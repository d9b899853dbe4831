package repository

import (
	"context"

	"github.com/spec-kit/fotos-express/internal/domain"
	"github.com/spec-kit/fotos-express/internal/persistence"
	"github.com/spec-kit/fotos-express/pkg/util"
)

// StaffApplicationRepository manages photographer applications.
type StaffApplicationRepository interface {
	Create(ctx context.Context, application *domain.StaffApplication) error
	Insert(ctx context.Context, application *domain.StaffApplication) error
	GetByID(ctx context.Context, id string) (*domain.StaffApplication, error)
	List(ctx context.Context) ([]domain.StaffApplication, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.StaffApplication, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type staffApplicationRepository struct {
	docs documents[domain.StaffApplication]
}

// NewStaffApplicationRepository constructs the repository on a document store.
func NewStaffApplicationRepository(store persistence.DocumentStore) StaffApplicationRepository {
	return &staffApplicationRepository{docs: newDocuments[domain.StaffApplication](store, persistence.CollectionStaffApplications, util.PrefixStaffApplication, "Staff application")}
}

func (r *staffApplicationRepository) Create(ctx context.Context, application *domain.StaffApplication) error {
	return r.docs.create(ctx, application, func(id string) { application.ID = id })
}

func (r *staffApplicationRepository) Insert(ctx context.Context, application *domain.StaffApplication) error {
	return r.docs.insert(ctx, application.ID, application)
}

func (r *staffApplicationRepository) GetByID(ctx context.Context, id string) (*domain.StaffApplication, error) {
	return r.docs.get(ctx, id)
}

func (r *staffApplicationRepository) List(ctx context.Context) ([]domain.StaffApplication, error) {
	return r.docs.find(ctx, persistence.All())
}

func (r *staffApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.StaffApplication, error) {
	return r.docs.update(ctx, id, Patch{"status": status})
}

func (r *staffApplicationRepository) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}

func (r *staffApplicationRepository) Clear(ctx context.Context) error {
	return r.docs.drop(ctx)
}
