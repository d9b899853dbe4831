package repository

import (
	"context"

	"github.com/spec-kit/fotos-express/internal/domain"
	"github.com/spec-kit/fotos-express/internal/persistence"
	"github.com/spec-kit/fotos-express/pkg/util"
)

// BusinessRepository manages persistence for partner businesses.
type BusinessRepository interface {
	Create(ctx context.Context, business *domain.Business) error
	Insert(ctx context.Context, business *domain.Business) error
	GetByID(ctx context.Context, id string) (*domain.Business, error)
	List(ctx context.Context, filter BusinessFilter) ([]domain.Business, error)
	Update(ctx context.Context, id string, patch Patch) (*domain.Business, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// BusinessFilter narrows business listings.
type BusinessFilter struct {
	ActiveOnly bool
	IDs        []string
}

type businessRepository struct {
	docs documents[domain.Business]
}

// NewBusinessRepository constructs the repository on a document store.
func NewBusinessRepository(store persistence.DocumentStore) BusinessRepository {
	return &businessRepository{docs: newDocuments[domain.Business](store, persistence.CollectionBusinesses, util.PrefixBusiness, "Business")}
}

func (r *businessRepository) Create(ctx context.Context, business *domain.Business) error {
	return r.docs.create(ctx, business, func(id string) { business.ID = id })
}

func (r *businessRepository) Insert(ctx context.Context, business *domain.Business) error {
	return r.docs.insert(ctx, business.ID, business)
}

func (r *businessRepository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	return r.docs.get(ctx, id)
}

func (r *businessRepository) List(ctx context.Context, filter BusinessFilter) ([]domain.Business, error) {
	f := persistence.All()
	if filter.ActiveOnly {
		f = f.And("activo", true)
	}
	if filter.IDs != nil {
		f = f.AnyOf("id", filter.IDs)
	}
	return r.docs.find(ctx, f)
}

func (r *businessRepository) Update(ctx context.Context, id string, patch Patch) (*domain.Business, error) {
	return r.docs.update(ctx, id, patch)
}

func (r *businessRepository) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}

func (r *businessRepository) Clear(ctx context.Context) error {
	return r.docs.drop(ctx)
}
