package repository

import (
	"context"

	"github.com/spec-kit/fotos-express/internal/domain"
	"github.com/spec-kit/fotos-express/internal/persistence"
	"github.com/spec-kit/fotos-express/pkg/util"
)

// AmbulantClientRepository manages leads captured in zones.
type AmbulantClientRepository interface {
	Create(ctx context.Context, client *domain.AmbulantClient) error
	Insert(ctx context.Context, client *domain.AmbulantClient) error
	GetByID(ctx context.Context, id string) (*domain.AmbulantClient, error)
	FindByPhone(ctx context.Context, phone string) (*domain.AmbulantClient, error)
	List(ctx context.Context, filter AmbulantClientFilter) ([]domain.AmbulantClient, error)
	Update(ctx context.Context, id string, patch Patch) (*domain.AmbulantClient, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// AmbulantClientFilter narrows listings. A non-nil empty ZoneIDs matches nothing.
type AmbulantClientFilter struct {
	ZoneID  string
	ZoneIDs []string
}

type ambulantClientRepository struct {
	docs documents[domain.AmbulantClient]
}

// NewAmbulantClientRepository constructs the repository on a document store.
func NewAmbulantClientRepository(store persistence.DocumentStore) AmbulantClientRepository {
	return &ambulantClientRepository{docs: newDocuments[domain.AmbulantClient](store, persistence.CollectionAmbulantClients, util.PrefixAmbulantClient, "Client")}
}

func (r *ambulantClientRepository) Create(ctx context.Context, client *domain.AmbulantClient) error {
	return r.docs.create(ctx, client, func(id string) { client.ID = id })
}

func (r *ambulantClientRepository) Insert(ctx context.Context, client *domain.AmbulantClient) error {
	return r.docs.insert(ctx, client.ID, client)
}

func (r *ambulantClientRepository) GetByID(ctx context.Context, id string) (*domain.AmbulantClient, error) {
	return r.docs.get(ctx, id)
}

// FindByPhone returns the first client registered with phone.
func (r *ambulantClientRepository) FindByPhone(ctx context.Context, phone string) (*domain.AmbulantClient, error) {
	return r.docs.findOne(ctx, persistence.Where("telefono", phone))
}

func (r *ambulantClientRepository) List(ctx context.Context, filter AmbulantClientFilter) ([]domain.AmbulantClient, error) {
	f := persistence.All()
	if filter.ZoneID != "" {
		f = f.And("zonaId", filter.ZoneID)
	}
	if filter.ZoneIDs != nil {
		f = f.AnyOf("zonaId", filter.ZoneIDs)
	}
	return r.docs.find(ctx, f)
}

func (r *ambulantClientRepository) Update(ctx context.Context, id string, patch Patch) (*domain.AmbulantClient, error) {
	return r.docs.update(ctx, id, patch)
}

func (r *ambulantClientRepository) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}

func (r *ambulantClientRepository) Clear(ctx context.Context) error {
	return r.docs.drop(ctx)
}

// ActivityClientRepository manages leads captured at business activities.
type ActivityClientRepository interface {
	Create(ctx context.Context, client *domain.ActivityClient) error
	Insert(ctx context.Context, client *domain.ActivityClient) error
	GetByID(ctx context.Context, id string) (*domain.ActivityClient, error)
	FindByPhone(ctx context.Context, phone string, scope ActivityClientFilter) (*domain.ActivityClient, error)
	List(ctx context.Context, filter ActivityClientFilter) ([]domain.ActivityClient, error)
	Update(ctx context.Context, id string, patch Patch) (*domain.ActivityClient, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// ActivityClientFilter narrows listings. A non-nil empty ActivityIDs matches nothing.
type ActivityClientFilter struct {
	BusinessID  string
	ActivityID  string
	ActivityIDs []string
}

func (f ActivityClientFilter) build() persistence.Filter {
	out := persistence.All()
	if f.BusinessID != "" {
		out = out.And("negocioId", f.BusinessID)
	}
	if f.ActivityID != "" {
		out = out.And("actividadId", f.ActivityID)
	}
	if f.ActivityIDs != nil {
		out = out.AnyOf("actividadId", f.ActivityIDs)
	}
	return out
}

type activityClientRepository struct {
	docs documents[domain.ActivityClient]
}

// NewActivityClientRepository constructs the repository on a document store.
func NewActivityClientRepository(store persistence.DocumentStore) ActivityClientRepository {
	return &activityClientRepository{docs: newDocuments[domain.ActivityClient](store, persistence.CollectionActivityClients, util.PrefixActivityClient, "Client")}
}

func (r *activityClientRepository) Create(ctx context.Context, client *domain.ActivityClient) error {
	return r.docs.create(ctx, client, func(id string) { client.ID = id })
}

func (r *activityClientRepository) Insert(ctx context.Context, client *domain.ActivityClient) error {
	return r.docs.insert(ctx, client.ID, client)
}

func (r *activityClientRepository) GetByID(ctx context.Context, id string) (*domain.ActivityClient, error) {
	return r.docs.get(ctx, id)
}

// FindByPhone returns the first client with phone inside the optional scope.
func (r *activityClientRepository) FindByPhone(ctx context.Context, phone string, scope ActivityClientFilter) (*domain.ActivityClient, error) {
	return r.docs.findOne(ctx, scope.build().And("telefono", phone))
}

func (r *activityClientRepository) List(ctx context.Context, filter ActivityClientFilter) ([]domain.ActivityClient, error) {
	return r.docs.find(ctx, filter.build())
}

func (r *activityClientRepository) Update(ctx context.Context, id string, patch Patch) (*domain.ActivityClient, error) {
	return r.docs.update(ctx, id, patch)
}

func (r *activityClientRepository) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}

func (r *activityClientRepository) Clear(ctx context.Context) error {
	return r.docs.drop(ctx)
}
