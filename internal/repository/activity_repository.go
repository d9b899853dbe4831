package repository

import (
	"context"

	"github.com/spec-kit/fotos-express/internal/domain"
	"github.com/spec-kit/fotos-express/internal/persistence"
	"github.com/spec-kit/fotos-express/pkg/util"
)

// ActivityRepository manages persistence for business activities.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	Insert(ctx context.Context, activity *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context, filter ActivityFilter) ([]domain.Activity, error)
	Update(ctx context.Context, id string, patch Patch) (*domain.Activity, error)
	Delete(ctx context.Context, id string) error
	DeleteByBusiness(ctx context.Context, businessID string) (int64, error)
	Clear(ctx context.Context) error
}

// ActivityFilter narrows activity listings.
type ActivityFilter struct {
	ActiveOnly bool
	BusinessID string
	StaffID    string
	IDs        []string
}

type activityRepository struct {
	docs documents[domain.Activity]
}

// NewActivityRepository constructs the repository on a document store.
func NewActivityRepository(store persistence.DocumentStore) ActivityRepository {
	return &activityRepository{docs: newDocuments[domain.Activity](store, persistence.CollectionActivities, util.PrefixActivity, "Activity")}
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	if activity.AssignedStaff == nil {
		activity.AssignedStaff = []string{}
	}
	return r.docs.create(ctx, activity, func(id string) { activity.ID = id })
}

func (r *activityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	if activity.AssignedStaff == nil {
		activity.AssignedStaff = []string{}
	}
	return r.docs.insert(ctx, activity.ID, activity)
}

func (r *activityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	return r.docs.get(ctx, id)
}

func (r *activityRepository) List(ctx context.Context, filter ActivityFilter) ([]domain.Activity, error) {
	f := persistence.All()
	if filter.ActiveOnly {
		f = f.And("activa", true)
	}
	if filter.BusinessID != "" {
		f = f.And("negocioId", filter.BusinessID)
	}
	if filter.StaffID != "" {
		f = f.HasElement("fotografosAsignados", filter.StaffID)
	}
	if filter.IDs != nil {
		f = f.AnyOf("id", filter.IDs)
	}
	return r.docs.find(ctx, f)
}

func (r *activityRepository) Update(ctx context.Context, id string, patch Patch) (*domain.Activity, error) {
	return r.docs.update(ctx, id, patch)
}

func (r *activityRepository) Delete(ctx context.Context, id string) error {
	return r.docs.delete(ctx, id)
}

func (r *activityRepository) DeleteByBusiness(ctx context.Context, businessID string) (int64, error) {
	return r.docs.deleteMany(ctx, persistence.Where("negocioId", businessID))
}

func (r *activityRepository) Clear(ctx context.Context) error {
	return r.docs.drop(ctx)
}
