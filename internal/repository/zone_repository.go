package repository

import (
	"context"

	"github.com/spec-kit/fotos-express/internal/domain"
	"github.com/spec-kit/fotos-express/internal/persistence"
	"github.com/spec-kit/fotos-express/pkg/util"
)

// ZoneRepository manages persistence for zones.
type ZoneRepository interface {
	Create(ctx context.Context, zone *domain.Zone) error
	Insert(ctx context.Context, zone *domain.Zone) error
	GetByID(ctx context.Context, id string) (*domain.Zone, error)
	List(ctx context.Context, filter ZoneFilter) ([]domain.Zone, error)
	Update(ctx context.Context, id string, patch Patch) (*domain.Zone, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// ZoneFilter narrows zone listings. Zero values do not constrain.
type ZoneFilter struct {
	ActiveOnly bool
	StaffID    string
	IDs        []string
}

type zoneRepository struct {
	docs documents[domain.Zone]
}

// NewZoneRepository constructs the repository on a document store.
func NewZoneRepository(store persistence.DocumentStore) ZoneRepository {
	return &zoneRepository{docs: newDocuments[domain.Zone](store, persistence.CollectionZones, util.PrefixZone, "Zone")}
}

func (r *zoneRepository) Create(ctx context.Context, zone *domain.Zone) error {
	if zone.AssignedStaff == nil {
		zone.AssignedStaff = []string{}
	}
	return r.docs.create(ctx, zone, func(id string) { zone.ID = id })
}

func (r *zoneRepository) Insert(ctx context.Context, zone *domain.Zone) error {
	if zone.AssignedStaff == nil {
		zone.AssignedStaff = []string{}
	}
	return r.docs.insert(ctx, zone.ID, zone)
}

func (r *zoneRepository) GetByID(ctx context.Context, id string) (*domain.Zone, error) {
	return r.docs.get(ctx, id)
}

func (r *zoneRepository) List(ctx context.Context, filter ZoneFilter) ([]domain.Zone, error) {
	f := persistence.All()
	if filter.ActiveOnly {
		f = f.And("activa", true)
	}
	if filter.StaffID != "" {
		f = f.HasElement("fotografosAsignados", filter.StaffID)
	}
	if filter.IDs != nil {
		f = f.AnyOf("id", filter.IDs)
	}
	return r.docs.find(ctx, f)
}

func (r *zoneRepository) Update(ctx context.Context, id string, patch Patch) (*domain.Zone, error) {
	return r.docs.update(ctx, id, patch)
}

func (r *zoneRepository) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}

func (r *zoneRepository) Clear(ctx context.Context) error {
	return r.docs.drop(ctx)
}
